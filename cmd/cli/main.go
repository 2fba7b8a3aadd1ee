package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/gatormarket/internal/buildinfo"
	"github.com/dmitrijs2005/gatormarket/internal/client/accounts"
	"github.com/dmitrijs2005/gatormarket/internal/client/cli"
	"github.com/dmitrijs2005/gatormarket/internal/client/config"
	"github.com/dmitrijs2005/gatormarket/internal/client/images"
	"github.com/dmitrijs2005/gatormarket/internal/client/listings"
	"github.com/dmitrijs2005/gatormarket/internal/client/profiles"
	"github.com/dmitrijs2005/gatormarket/internal/client/remote"
	"github.com/dmitrijs2005/gatormarket/internal/client/session"
	"github.com/dmitrijs2005/gatormarket/internal/client/store"
	"github.com/dmitrijs2005/gatormarket/internal/filex"
	"github.com/dmitrijs2005/gatormarket/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	logger := logging.New(os.Stderr, logging.FormatText, cfg.LogLevel)

	dataFile, err := filex.ExpandHome(cfg.DataFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if err := filex.EnsureParentDir(dataFile); err != nil {
		log.Fatalf("%v", err)
	}

	st, err := store.OpenSQLite(ctx, dataFile)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer st.Close()

	repo := listings.NewRepository(st, logger)
	if err := repo.Load(ctx); err != nil {
		log.Fatalf("%v", err)
	}

	var (
		auth   session.Authenticator
		pinger cli.Pinger
	)
	if cfg.MockMode {
		auth = accounts.NewService(st, cfg.EmailDomain, cfg.MockLatency, logger)
	} else {
		rc := remote.NewClient(cfg.APIBaseURL, cfg.RequestTimeout, st, logger)
		auth, pinger = rc, rc
	}

	var uploader images.Uploader
	if cfg.ImageBucket != "" {
		s3u, err := images.NewS3Uploader(ctx, images.S3Config{
			Bucket:   cfg.ImageBucket,
			Region:   cfg.ImageRegion,
			Endpoint: cfg.ImageEndpoint,
		})
		if err != nil {
			log.Fatalf("%v", err)
		}
		uploader = s3u
	}

	ctrl := session.New(auth, repo, profiles.NewStore(st), session.Options{
		EmailDomain: cfg.EmailDomain,
		Images:      images.NewResolver(uploader),
		Logger:      logger,
	})

	cli.NewApp(ctrl, pinger, logger).Root(ctx, cfg.OnlineCheckInterval)

}
