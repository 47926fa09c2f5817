package di

import (
	"context"
	"io/ioutil"
	"log"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"usage-map-server/api"
	"usage-map-server/api/sheets"
	"usage-map-server/config"
	redisdao "usage-map-server/dao/redis"
	"usage-map-server/db"
	"usage-map-server/server"
	"usage-map-server/server/handlers"
	services "usage-map-server/service"
)

// Container holds all application dependencies.
type Container struct {
	RedisClient        db.RedisClient
	SessionDao         *redisdao.SessionDAO
	SheetsAPI          sheets.SheetsAPI
	BookingService     *services.BookingService
	BookingHandler     *handlers.BookingHandler
	HotspotHandler     *handlers.HotspotHandler
	Auth               *server.Auth
	MuxRouter          *mux.Router
	Router             *server.Router
	UsageMapHttpServer *server.UsageMapHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	// Session store: Redis when configured, in-memory otherwise
	var redisClient db.RedisClient
	if addr := config.RedisAddr(); addr != "" {
		internalClient := goredis.NewClient(&goredis.Options{
			Addr:     addr,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		redisClient = db.NewStoreRedisClient(ctx, internalClient)
	} else {
		log.Println("REDIS_ADDR unset, using in-memory session store")
		redisClient = db.NewMockRedisClient(ctx)
	}

	sessionDao := redisdao.NewSessionDAO(redisClient)

	// Upstream sheet source: mock outside prod so the server runs offline
	var sheetsAPI sheets.SheetsAPI
	if env != "prod" {
		log.Println("Using mock sheets api")
		csv, err := ioutil.ReadFile(config.GetResourcePath(config.SHEET_SAMPLE_RESOURCE))
		if err != nil {
			log.Printf("Could not read sheet sample fixture: %v", err)
		}
		sheetsAPI = sheets.NewSheetsApiClientMock(string(csv))
	} else {
		log.Println("Using prod sheets api")
		httpClient := api.NewHTTPClient(config.SHEETS_ENDPOINT_BASE)
		sheetsAPI = sheets.NewSheetsApiClient(httpClient, config.SheetID())
	}

	// Initialize service layer
	bookingService := services.NewBookingService(sheetsAPI)

	// Initialize handlers
	bookingHandler := handlers.NewBookingHandler(bookingService)
	hotspotHandler := handlers.NewHotspotHandler(
		config.GetResourcePath(config.HOTSPOTS_RESOURCE), bookingService)

	// Login gate
	auth := server.NewAuth(config.SitePassword(), config.SitePasswordHash(), sessionDao)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(bookingHandler, hotspotHandler, auth, muxRouter)

	// Initialize usage map server
	usageMapHttpServer := server.NewUsageMapHttpServer(router, muxRouter, config.Port())

	return &Container{
		RedisClient:        redisClient,
		SessionDao:         sessionDao,
		SheetsAPI:          sheetsAPI,
		BookingService:     bookingService,
		BookingHandler:     bookingHandler,
		HotspotHandler:     hotspotHandler,
		Auth:               auth,
		MuxRouter:          muxRouter,
		Router:             router,
		UsageMapHttpServer: usageMapHttpServer,
	}
}
