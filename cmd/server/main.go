package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/maramilod/alx-backend/internal/config"
	"github.com/maramilod/alx-backend/internal/database"
	"github.com/maramilod/alx-backend/internal/i18n"
	"github.com/maramilod/alx-backend/internal/realtime"
	"github.com/maramilod/alx-backend/internal/routes"
	"github.com/maramilod/alx-backend/internal/server"
)

func main() {
	configPath := flag.String("config", "", "path to a JSON config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// Init user directory
	database.InitDB(cfg.DBPath)

	negotiator, err := i18n.NewNegotiator(cfg.I18n)
	if err != nil {
		log.Fatal("Failed to configure i18n: ", err)
	}

	hub := realtime.NewHub()
	// DISCARD lines go to stdout; request logs go to gin's writer.
	caches, err := server.BuildCaches(cfg, hub, os.Stdout)
	if err != nil {
		log.Fatal("Failed to build caches: ", err)
	}

	ginRoutes := routes.SetupRoutes(routes.Dependencies{
		Caches:     caches,
		Hub:        hub,
		Negotiator: negotiator,
	})

	log.Println("API endpoints:")
	log.Println("  GET    /")
	log.Println("  POST   /api/login")
	log.Println("  GET    /api/caches")
	log.Println("  GET    /api/caches/:name")
	log.Println("  GET    /api/caches/:name/items")
	log.Println("  GET    /api/caches/:name/items/:key")
	log.Println("  PUT    /api/caches/:name/items/:key")
	log.Println("  DELETE /api/caches/:name/items/:key")
	log.Println("  GET    /api/caches/:name/events (websocket)")
	log.Println("  GET    /health")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, cfg.Addr, ginRoutes); err != nil {
		log.Fatal("Failed to start server: ", err)
	}
}
