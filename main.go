// main.go
package main

import (
	"log"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/canreg/aircraftdash/config"
	"github.com/canreg/aircraftdash/handlers"
	"github.com/canreg/aircraftdash/registry"
)

func main() {
	log.Println("Starting Canadian Aircraft Registry dashboard backend...")

	configPath := os.Getenv("CONFIG_PATH")
	if err := config.LoadConfig(configPath); err != nil {
		log.Fatalf("Error loading configuration: %v", err)
	}
	log.Printf("Configuration loaded. Server port: %s, owners CSV: %s, current CSV: %s",
		config.AppConfig.Server.Port,
		config.AppConfig.Registry.OwnersCSV,
		config.AppConfig.Registry.CurrentCSV)

	// The dataset loads exactly once for the process lifetime. An unreadable
	// source table aborts startup; there is no degraded-load mode.
	err := registry.Init(config.AppConfig.Registry.OwnersCSV, config.AppConfig.Registry.CurrentCSV)
	if err != nil {
		log.Fatalf("Error loading registry dataset: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/api/health", handlers.HealthHandler)
	r.Get("/api/filters/options", handlers.FilterOptionsHandler)
	r.Post("/api/dashboard", handlers.DashboardHandler)
	r.Post("/api/records", handlers.RecordsHandler)

	serverAddr := ":" + config.AppConfig.Server.Port
	log.Printf("Server starting on http://localhost%s\n", serverAddr)
	if err := http.ListenAndServe(serverAddr, r); err != nil {
		log.Fatalf("Error starting server: %v", err)
	}
}
