// Command server streams a procedurally growing pipe world to renderer
// clients over WebSocket.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gravitas-games/pipeworks/internal/config"
	"github.com/gravitas-games/pipeworks/internal/server"
)

// defaultConfigPath resolves the config location: the -config flag wins,
// then CONFIG_PATH, then the shipped sample.
func defaultConfigPath() string {
	if env := os.Getenv("CONFIG_PATH"); env != "" {
		return env
	}
	return "./configs/server.yaml"
}

func main() {
	configPath := flag.String("config", defaultConfigPath(), "path to the server config file")
	flag.Parse()

	log.Println("Starting Pipeworks Server...")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Configuration loaded from %s", *configPath)
	log.Printf("World: %dx%dx%d grid, turn probability %.2f, stop probability %.2f",
		cfg.World.BoundsX, cfg.World.BoundsY, cfg.World.BoundsZ,
		cfg.World.TurnProbability, cfg.World.StopProbability)
	if cfg.Generation.TickMS > 0 {
		log.Printf("Generation: %d initial segments, then one per %dms",
			cfg.Generation.InitialSegments, cfg.Generation.TickMS)
	} else {
		log.Printf("Generation: %d initial segments, streaming disabled",
			cfg.Generation.InitialSegments)
	}

	// Create the server; this builds the world and grows the initial burst
	srv, err := server.New(cfg)
	if err != nil {
		log.Fatalf("Failed to create server: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	errChan := make(chan error, 1)
	go func() {
		log.Printf("Server listening on %s", addr)
		errChan <- srv.Start(addr)
	}()

	// Wait for interrupt signal or listener failure
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errChan:
		if err != nil {
			log.Fatalf("Server error: %v", err)
		}
	case sig := <-sigChan:
		log.Printf("Received signal %v, shutting down...", sig)
	}

	// Graceful shutdown
	if err := srv.Shutdown(); err != nil {
		log.Printf("Error during shutdown: %v", err)
	}

	log.Println("Server stopped")
}
