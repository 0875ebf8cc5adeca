package app

import (
	"log/slog"

	"cuifreport.sfcdata.org/internal/cuif"
	"cuifreport.sfcdata.org/internal/pipeline"
	"cuifreport.sfcdata.org/internal/socrata"
)

// Application holds the dependencies for our HTTP handlers, helpers and
// middleware: configuration, the logger, the constant catalogs and the
// report pipeline.
type Application struct {
	Config   Config
	Logger   *slog.Logger
	Catalog  *cuif.Catalog
	Dataset  *socrata.Client
	Pipeline *pipeline.Pipeline
}

// Config holds all the configuration settings for our Application: the
// network port the server listens on, the name of the current operating
// environment (development, staging, production, etc.) and the base URL of
// the CUIF open-data resource. These are read from command-line flags when
// the Application starts.
type Config struct {
	Port           int
	Env            string
	SocrataBaseURL string
}
