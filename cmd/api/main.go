package main

import (
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"cuifreport.sfcdata.org/internal/app"
	"cuifreport.sfcdata.org/internal/cuif"
	"cuifreport.sfcdata.org/internal/logging"
	"cuifreport.sfcdata.org/internal/pipeline"
	"cuifreport.sfcdata.org/internal/restapi"
	"cuifreport.sfcdata.org/internal/socrata"
)

func main() {
	var cfg app.Config

	flag.IntVar(&cfg.Port, "port", 4000, "API server port")
	flag.StringVar(&cfg.Env, "env", "development", "Environment (development|staging|production)")
	flag.StringVar(&cfg.SocrataBaseURL, "socrata-url", socrata.DefaultBaseURL, "Base URL of the CUIF open-data resource")
	flag.Parse()

	var logger *slog.Logger
	if cfg.Env == "production" {
		logger = logging.NewStructuredLogger(os.Stdout, slog.LevelInfo)
	} else {
		logger = slog.New(slog.NewTextHandler(os.Stdout, nil))
	}

	catalog := cuif.DefaultCatalog()
	dataset := socrata.NewClient(cfg.SocrataBaseURL, nil, logger)

	application := &app.Application{
		Config:   cfg,
		Logger:   logger,
		Catalog:  catalog,
		Dataset:  dataset,
		Pipeline: pipeline.New(dataset, catalog, nil, logger),
	}

	api := restapi.NewRestAPI(application)

	srv := &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.Port),
		Handler:     api.Routes(),
		IdleTimeout: time.Minute,
		ReadTimeout: 30 * time.Second,
		// Report generation downloads the full record set before answering;
		// multi-page fetches can take minutes.
		WriteTimeout: 10 * time.Minute,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env)
	err := srv.ListenAndServe()
	logger.Error(err.Error())
	os.Exit(1)
}
