package main

import (
	"os"

	"github.com/rs/zerolog"

	"dataplot/internal/app"
	"dataplot/internal/config"
	"dataplot/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.NewConsoleLogger(zerolog.InfoLevel).Error("Main", err, map[string]interface{}{
			"stage": "config",
		})
		os.Exit(1)
	}

	log := logger.New(cfg.LogLevel, cfg.JSONLogs)

	application, err := app.NewApplication(cfg, log)
	if err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "init"})
		os.Exit(1)
	}

	if err := application.Run(); err != nil {
		log.Error("Main", err, map[string]interface{}{"stage": "run"})
		os.Exit(1)
	}

	log.Info("Main", "application terminated", nil)
}
