package main // Entry point package

import (
	"context"
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/boarding-house-manager/internal/config"
	"github.com/iliyamo/boarding-house-manager/internal/handler"
	"github.com/iliyamo/boarding-house-manager/internal/ledger"
	"github.com/iliyamo/boarding-house-manager/internal/queue"
	"github.com/iliyamo/boarding-house-manager/internal/router"
	"github.com/iliyamo/boarding-house-manager/internal/store"
)

func main() {
	// Load a local .env when present; real deployments set the
	// environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	led := ledger.New(openStore(cfg), func(ev queue.LedgerEvent) {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = queue.PublishLedgerEvent(ctx, ev) // best effort, errors already logged
	})
	led.Load(context.Background())

	// Notification consumer runs for the life of the process and
	// reconnects on its own.
	go queue.StartNotificationConsumer()

	e := echo.New()
	router.RegisterRoutes(e)
	router.RegisterAPI(e, handler.NewAuthHandler(cfg), handler.NewLedgerHandler(led), cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, store=%s)", addr, cfg.Env, cfg.StoreDriver)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}

// openStore selects the blob store backend.  Unreachable backends fall
// back to the in-memory store so the tool stays usable; durability is
// soft by design.
func openStore(cfg config.Config) store.Store {
	switch cfg.StoreDriver {
	case config.DriverRedis:
		if client := config.NewRedisClient(); client != nil {
			return store.NewRedis(client)
		}
		log.Printf("redis unreachable, falling back to in-memory store")
	case config.DriverMySQL:
		st, err := store.OpenMySQL(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err == nil {
			return st
		}
		log.Printf("mysql unreachable, falling back to in-memory store: %v", err)
	}
	return store.NewMemory()
}
