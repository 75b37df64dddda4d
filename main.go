package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"device-telemetry-backend/internal/api"
	"device-telemetry-backend/internal/broker"
	"device-telemetry-backend/internal/config"
	"device-telemetry-backend/internal/db"
	"device-telemetry-backend/internal/ingest"
	"device-telemetry-backend/internal/worker"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)

	slog.InfoContext(ctx, "Starting service...")

	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	store, err := db.Init(ctx, db.Config{
		ConnString:     cfg.DatabaseURL,
		MigrationsPath: cfg.MigrationsPath,
	})
	if err != nil {
		panic(err)
	}
	defer store.Close()

	sub := broker.New(broker.Config{
		URL:      cfg.MQTTURL,
		ClientID: cfg.MQTTClientID,
		Username: cfg.MQTTUsername,
		Password: cfg.MQTTPassword,
		Topic:    cfg.MQTTTopic,
		Buffer:   cfg.IngestBuffer,
	})
	if err := sub.Connect(ctx); err != nil {
		panic(err)
	}

	coordinator := ingest.New(ingest.Config{
		Source:      sub,
		Recorder:    ingest.NewEventRecorder(store),
		Reconciler:  ingest.NewHealthReconciler(store),
		DeadLetters: store,
		Channels:    cfg.Channels,
	})

	ingestWorker := worker.New(worker.Config{
		Name:      "ingest-worker",
		Processor: coordinator,
	})

	wg := sync.WaitGroup{}
	wg.Go(func() {
		ingestWorker.Run(ctx)
	})

	r := chi.NewRouter()
	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"ok":true}`))
	})
	r.Handle("/metrics", promhttp.Handler())
	r.Mount("/", api.New(api.Config{DB: store}).Routes())

	server := &http.Server{Addr: cfg.HTTPAddr, Handler: r}
	go func() {
		slog.InfoContext(ctx, "HTTP server listening", "addr", cfg.HTTPAddr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.ErrorContext(ctx, "HTTP server error", "error", err)
			cancel()
		}
	}()

	go func() {
		<-sigs
		cancel()
	}()

	wg.Wait()

	server.Shutdown(context.Background())
	sub.Close()
}
