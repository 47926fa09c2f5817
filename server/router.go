package server

import (
	"github.com/gorilla/mux"

	"usage-map-server/server/handlers"
)

type Router struct {
	bookingHandler *handlers.BookingHandler
	hotspotHandler *handlers.HotspotHandler
	auth           *Auth
	router         *mux.Router
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	bookingHandler *handlers.BookingHandler,
	hotspotHandler *handlers.HotspotHandler,
	auth *Auth,
	router *mux.Router) *Router {
	return &Router{
		bookingHandler: bookingHandler,
		hotspotHandler: hotspotHandler,
		auth:           auth,
		router:         router,
	}
}

func (r *Router) RegisterRoutes() {
	// Everything except /login and /ping sits behind the session cookie.
	r.router.Use(r.auth.Middleware)

	// expects ?date={YYYY-MM-DD}&debug={1}
	r.router.HandleFunc("/v1/bookings", r.bookingHandler.GetBookings).Methods("GET")

	r.router.HandleFunc("/v1/hotspots", r.hotspotHandler.GetHotspots).Methods("GET")

	// expects ?date={YYYY-MM-DD}
	r.router.HandleFunc("/v1/spaces/report", r.hotspotHandler.GetSpaceUsageReport).Methods("GET")

	r.router.HandleFunc("/login", r.auth.Login).Methods("POST")

	r.router.HandleFunc("/ping", r.bookingHandler.Ping).Methods("GET")
}
