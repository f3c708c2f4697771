package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/Lucas-Aron/Retail/internal/app"
	"github.com/Lucas-Aron/Retail/internal/config"
	"github.com/Lucas-Aron/Retail/internal/http"
	"github.com/Lucas-Aron/Retail/internal/pkg/clock"
)

func main() {

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		log.Fatalf("config error: %v", err)
	}

	a, err := app.New(ctx, cfg, clock.NewRealClock())
	if err != nil {
		log.Fatalf("DB error: %v", err)
	}
	log.Println("DB Connection Established")
	defer func() {
		if err := a.Close(); err != nil {
			log.Printf("close store: %v", err)
		}
	}()

	r := httpserver.NewRouter(httpserver.Services{
		Store:     a.Store,
		Products:  a.Products,
		Suppliers: a.Suppliers,
		Access:    a.Access,
	})

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	}()

	log.Printf("API listening on %s", cfg.Addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal(err)
	}
}
