package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"chaincheck/internal/catalog"
	"chaincheck/internal/checklist"
	checklisthandler "chaincheck/internal/checklist/handler"
	"chaincheck/internal/checklist/store"
	"chaincheck/internal/platform/config"
	"chaincheck/internal/platform/httpserver"
	"chaincheck/internal/platform/logger"
	"chaincheck/internal/platform/metrics"
	"chaincheck/internal/threat"
	httptransport "chaincheck/internal/transport/http"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps
// the server lifecycle small. Business logic lives in the internal
// packages.
func main() {
	cfg, err := config.FromEnv()
	if err != nil {
		os.Stderr.WriteString("config: " + err.Error() + "\n")
		os.Exit(1)
	}
	log := logger.New(cfg.LogLevel)
	m := metrics.New()

	ctx := context.Background()

	cat, err := catalog.Load(ctx, log)
	if err != nil {
		log.Error("catalog load failed", "error", err.Error())
		os.Exit(1)
	}
	for _, problem := range cat.Validate() {
		log.Warn("catalog data defect", "problem", problem)
	}
	for _, problem := range threat.ValidateMappings(cat) {
		log.Warn("threat mapping data defect", "problem", problem)
	}

	st, err := store.OpenSQLite(cfg.DBPath, log)
	if err != nil {
		log.Error("opening database failed", "path", cfg.DBPath, "error", err.Error())
		os.Exit(1)
	}
	defer st.Close()

	filter := threat.NewFilter(log, m)
	service := checklist.NewService(ctx, log, m, cat, filter, st, cfg.SettleDelay)
	defer service.Close()

	handler := checklisthandler.New(service, log)
	router := httptransport.NewRouter(handler, log, m)
	srv := httpserver.New(cfg.Addr, router)

	log.Info("starting chaincheck",
		"addr", cfg.Addr,
		"db", cfg.DBPath,
		"items", cat.ItemCount(),
		"threat_level", string(service.ThreatLevel()),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err.Error())
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("graceful shutdown failed", "error", err.Error())
		os.Exit(1)
	}
}
