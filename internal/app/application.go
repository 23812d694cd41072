package app

import (
	"log/slog"

	"econdash.hanlabs.org/internal/appconf"
	"econdash.hanlabs.org/internal/dataset"
)

// Application holds the dependencies for the HTTP handlers, helpers and
// middleware: the merged configuration, the structured logger and the
// load-once dataset manager.
type Application struct {
	Config      appconf.Config
	Logger      *slog.Logger
	DataManager *dataset.Manager
}
