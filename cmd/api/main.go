package main

import (
	"context"
	"log"

	"tally/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + handlers).
// 3) Start HTTP server.
func main() {
	app, err := bootstrap.BuildAPI()
	if err != nil {
		log.Fatalf("tally api build failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("tally api close failed: %v", err)
		}
	}()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("tally api stopped: %v", err)
	}
}
