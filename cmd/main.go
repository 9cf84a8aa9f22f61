package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/orderdesk/supplier-orders/internal/app"
	"github.com/orderdesk/supplier-orders/internal/config"
	"github.com/orderdesk/supplier-orders/internal/handler"
	"github.com/orderdesk/supplier-orders/internal/postgres"
	"github.com/orderdesk/supplier-orders/internal/repo"
	"github.com/orderdesk/supplier-orders/internal/service"
	"github.com/orderdesk/supplier-orders/internal/shopify"
	"github.com/orderdesk/supplier-orders/pkg/cache"
	"github.com/orderdesk/supplier-orders/pkg/trm"
)

func main() {
	conf := config.New()
	logger := newLogger(conf.Env)
	panicIfErr("invalid config", conf.Validate())

	db, err := postgres.New(conf.Postgres)
	panicIfErr("failed to connect to db", err)
	defer db.Close()
	logger.Info("postgres connected")

	storeRepo := repo.NewPostgresRepo(db)
	txManager := trm.NewManager(db)
	orderCache := cache.NewLRUCache(conf.Cache.Capacity, conf.Cache.TTL)
	fetcher := shopify.NewFetcher(logger, conf.Shopify)

	syncService := service.NewSyncService(logger, txManager, storeRepo, storeRepo, fetcher, orderCache)
	orderService := service.NewOrderService(logger, storeRepo, storeRepo, storeRepo, syncService, orderCache)

	kafkaHandler := handler.NewKafkaHandler(logger, conf.Kafka, syncService)
	httpHandler := handler.NewHTTPHandler(logger, orderService, syncService)
	handler.RegisterMetrics()

	app := app.New(logger, conf)

	app.SetHTTPHandlers(httpHandler)
	app.SetConsumers(kafkaHandler)
	app.SetStarters(orderCache)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	panicIfErr("failed to start app", app.Start(ctx))
	<-ctx.Done()
	panicIfErr("failed to stop app", app.Stop())
}

func init() {
	godotenv.Load()
}

func newLogger(env string) *slog.Logger {
	switch env {
	case "production":
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}

func panicIfErr(prefix string, err error) {
	if err != nil {
		panic(prefix + ": " + err.Error())
	}
}
