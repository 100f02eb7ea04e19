package main

import (
	"freecast-workers/src/application"
	"freecast-workers/src/application/config"
	"freecast-workers/src/lib/cerr"
	"freecast-workers/src/lib/logger"
	"net/http"
	"os"

	"github.com/apex/log"
)

func main() {
	cfg, err := config.LoadWorker()
	if err != nil {
		cerr.Log(err)
		os.Exit(1)
	}

	if err := logger.Configure(cfg.Environment, cfg.LogLevel, os.Stderr); err != nil {
		cerr.Log(err)
		os.Exit(1)
	}

	app := application.NewApp(cfg)
	app.Start()

	if cfg.MetricsAddr != "" {
		go serveMetrics(cfg.MetricsAddr, app.MetricsHandler())
	}

	waitForever()
}

func serveMetrics(addr string, handler http.Handler) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", handler)

	log.WithField("addr", addr).Info("Serving metrics")
	if err := http.ListenAndServe(addr, mux); err != nil {
		cerr.Log(cerr.Field("addr", addr).Wrap(err).Error("Metrics server stopped"))
	}
}

func waitForever() {
	<-make(chan bool)
}
