package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/yourusername/cheesecake-chat/internal/config"
	"github.com/yourusername/cheesecake-chat/internal/server"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := config.LoadDotEnv(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.LoadServer()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	addr := flag.String("addr", cfg.Addr, "HTTP service address")
	catalogPath := flag.String("catalog", cfg.CatalogPath, "JSON product catalog (empty uses the built in one)")
	flag.Parse()

	catalog := server.NewCatalog(server.Seed())
	if *catalogPath != "" {
		catalog, err = server.LoadCatalog(*catalogPath)
		if err != nil {
			log.Fatalf("failed to load catalog: %v", err)
		}
	}
	log.Printf("Catalog ready with %d products", catalog.Len())

	srv := &http.Server{
		Addr:              *addr,
		Handler:           server.NewServer(catalog).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server on %s", *addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("ListenAndServe: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}
}
