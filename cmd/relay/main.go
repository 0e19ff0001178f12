package main

import (
	"log"
	"log/slog"
	"net/http"

	"social-login/internal/relay"
	"social-login/internal/server"
	"social-login/internal/shared/config"
	"social-login/internal/shared/logger"
)

func main() {
	if err := config.Init(); err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	logger.Init()

	cfg := config.GlobalConfig

	exchanger := relay.NewExchanger(cfg.GitHub.ClientID, cfg.GitHub.ClientSecret)
	routes := server.NewRoutes(exchanger)

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      routes.Setup(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	slog.Info("Token-exchange relay starting",
		"port", cfg.Server.Port,
		"environment", cfg.Server.Environment,
	)

	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("Server stopped:", err)
	}
}
