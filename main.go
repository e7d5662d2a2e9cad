package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/soocke/crop-tool-go/app"
	"github.com/soocke/crop-tool-go/config"
)

func main() {
	cfgPath := flag.String("config", "crop.json", "path to the JSON config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	logger := NewLogger(levelFor(cfg))
	if err != nil {
		logger.Error("load config", "path", *cfgPath, "error", err)
		os.Exit(1)
	}
	if wrote, err := config.WriteDefault(*cfgPath); err != nil {
		logger.Warn("write default config", "path", *cfgPath, "error", err)
	} else if wrote {
		logger.Info("wrote default config", "path", *cfgPath)
	}

	application, err := app.NewApp(cfg, logger)
	if err != nil {
		logger.Error("start", "error", err)
		os.Exit(1)
	}
	application.Start()
}
