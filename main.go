package main

import (
	"log"
	"os"

	"usage-map-server/di"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "prod"
	}

	container := di.NewContainer(env)

	log.Println("starting server!")
	container.UsageMapHttpServer.Start()
}
