package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/julienschmidt/httprouter"

	"econdash.hanlabs.org/internal/app"
	"econdash.hanlabs.org/internal/appconf"
	"econdash.hanlabs.org/internal/charts"
	"econdash.hanlabs.org/internal/dataset"
	"econdash.hanlabs.org/internal/logging"
	"econdash.hanlabs.org/internal/restapi"
	"econdash.hanlabs.org/internal/webui"
)

func serve(cfg appconf.Config) error {
	logLevel := slog.LevelInfo
	if cfg.Env == appconf.Development {
		logLevel = slog.LevelDebug
	}
	logger := logging.NewStructuredLogger(os.Stdout, logLevel)

	// Best effort; without a host CJK font the charts still render, just
	// with degraded Hangul labels.
	charts.RegisterKoreanFont(logger)

	application := &app.Application{
		Config:      cfg,
		Logger:      logger,
		DataManager: dataset.NewManager(cfg.DataPath, logger),
	}

	router := httprouter.New()
	api := restapi.NewRestAPI(application)
	api.SetRoutes(router)
	web := webui.NewWebUI(application)
	web.SetRoutes(router)

	handler := restapi.NewRequestLoggingMiddleware(logger)(
		restapi.CompressionMiddleware(
			restapi.NewRateLimitMiddleware(cfg.RateLimit, time.Second)(router)))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      handler,
		IdleTimeout:  time.Minute,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 30 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	logger.Info("starting server", "addr", srv.Addr, "env", cfg.Env.String())
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return logging.ReplaceLogFatal(logger, "server stopped", err)
	}
	return nil
}
