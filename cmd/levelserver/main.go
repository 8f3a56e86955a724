// Command levelserver serves generated levels over HTTP.
package main

import (
	"context"
	"log"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/samdwyer/dungeoncrawl/internal/gamedata"
	"github.com/samdwyer/dungeoncrawl/internal/server"
	"github.com/samdwyer/dungeoncrawl/internal/telemetry"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	telemetry.ConfigureHoneycomb()

	ctx := context.Background()
	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(ctx); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	addr := os.Getenv("LEVELSERVER_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	registry, err := gamedata.LoadLevelRegistry()
	if err != nil {
		log.Fatalf("Failed to load levels: %v", err)
	}

	log.Printf("Serving %d level presets on %s", registry.Count(), addr)
	if err := http.ListenAndServe(addr, server.NewHandler(registry).Routes()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}
