package main

import (
	"context"
	"log"
	"os"

	"github.com/dmitrijs2005/gatormarket/internal/buildinfo"
	"github.com/dmitrijs2005/gatormarket/internal/logging"
	"github.com/dmitrijs2005/gatormarket/internal/server"
	"github.com/dmitrijs2005/gatormarket/internal/server/config"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()
	logger := logging.New(os.Stdout, logging.FormatJSON, cfg.LogLevel)

	app, err := server.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	if err := app.Run(ctx); err != nil {
		log.Fatalf("%v", err)
	}

}
