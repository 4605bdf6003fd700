package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hrms_backend/internals/configs"
	database "hrms_backend/internals/databases"
	routes "hrms_backend/internals/route"
	"hrms_backend/internals/seeds"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := configs.LoadEnv()
	if err != nil {
		log.Fatalf("❌ config error: %v", err)
	}

	// 🔌 Record Store (mongo / postgres / memory)
	st, err := database.OpenStore(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ store error: %v", err)
	}

	// 🌱 optional: isi data awal dari JSON
	if cfg.SeedFile != "" {
		if _, err := seeds.RunAllSeeds(context.Background(), st, cfg.SeedFile); err != nil {
			log.Fatalf("❌ seed error: %v", err)
		}
	}

	app := routes.NewApp(cfg, st)

	// Start server non-blocking
	go func() {
		log.Printf("✅ HRMS Lite API listening on :%s (store=%s)", cfg.Port, cfg.StoreDriver)
		if err := app.Listen("0.0.0.0:" + cfg.Port); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown + tutup koneksi store
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("[INFO] shutdown signal received (%s), draining in-flight requests", sig)

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("[WARN] server forced to shutdown: %v", err)
	}
	if err := st.Close(ctx); err != nil {
		log.Printf("[WARN] store close: %v", err)
	}
	log.Println("[INFO] server exited")
}
