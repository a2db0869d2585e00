package main

import (
	"context"
	"log"
	"os"

	"venue-map-proxy/config"
	"venue-map-proxy/di"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	cfg := config.Load()
	container := di.NewContainer(cfg)

	err := container.VenueMapHttpServer.Start(context.Background())
	container.Close()
	if err != nil {
		log.Fatalf("[MAIN] Server failed: %v", err)
	}
}
