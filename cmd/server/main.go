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

	"github.com/gin-gonic/gin"

	"video-catalog/cmd/config"
	"video-catalog/pkg/catalog"
	"video-catalog/pkg/database"
	"video-catalog/pkg/handlers"
	"video-catalog/pkg/s3"
)

func main() {
	configDir := flag.String("config", "", "directory holding config.yaml")
	flag.Parse()

	cfg, err := config.Load(*configDir)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	store, closeStore, err := openStore(cfg.Database)
	if err != nil {
		log.Fatalf("Error opening catalog store: %v", err)
	}
	defer closeStore()

	var media catalog.MediaResolver
	if cfg.AWS.SignMedia {
		presigner, err := s3.NewPresigner(cfg.AWS)
		if err != nil {
			log.Fatalf("Error configuring media signing: %v", err)
		}
		media = presigner
	}

	gin.SetMode(cfg.Server.Mode)
	r := gin.Default()

	h := handlers.New(catalog.NewService(store, media), log.Default())
	h.Register(r)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		log.Printf("catalog server listening on %s", cfg.Server.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server failed: %v", err)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown: %v", err)
	}
	log.Println("catalog server stopped")
}

func openStore(cfg config.Database) (catalog.Store, func(), error) {
	if cfg.Driver == "pgx" {
		pool, err := database.OpenPool(context.Background(), cfg)
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewPgxStore(pool), pool.Close, nil
	}

	db, err := database.Open(cfg)
	if err != nil {
		return nil, nil, err
	}
	return catalog.NewGormStore(db), func() { db.Close() }, nil
}
