package main

import (
	"context"
	"net/http"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	productapp "github.com/getinmotion/telar-sub006/application/product"
	shopapp "github.com/getinmotion/telar-sub006/application/shop"
	userapp "github.com/getinmotion/telar-sub006/application/user"
	"github.com/getinmotion/telar-sub006/cmd/config"
	redisclient "github.com/getinmotion/telar-sub006/cmd/redis"
	_ "github.com/getinmotion/telar-sub006/docs"
	productRepo "github.com/getinmotion/telar-sub006/repository/product"
	redisRepo "github.com/getinmotion/telar-sub006/repository/redis"
	shopRepo "github.com/getinmotion/telar-sub006/repository/shop"
	txRepo "github.com/getinmotion/telar-sub006/repository/tx"
	userRepo "github.com/getinmotion/telar-sub006/repository/user"
	"github.com/getinmotion/telar-sub006/thirdparty/rabbitmq"
	"github.com/getinmotion/telar-sub006/transport"
	"github.com/getinmotion/telar-sub006/utils/logger"
)

// @title TELAR ARTISAN SHOPS API
// @version 1.0
// @description Artisan shop listing and management API
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// Load configuration from environment variables
	cfg := config.Load()

	// Initialize global logger
	if err := logger.Init(cfg.Environment); err != nil {
		// fallback to standard log if zap init fails
		panic(err)
	}
	defer logger.Close()

	logger.Info("Starting server", zap.String("env", cfg.Environment))

	// Connect to database
	db, err := sqlx.Connect("mysql", cfg.GetDSN())
	if err != nil {
		logger.Fatal("err connect db", zap.Error(err))
	}

	// Initialize Redis client
	if err := redisclient.New(cfg); err != nil {
		logger.Fatal("err connect redis", zap.Error(err))
	}
	defer func() {
		_ = redisclient.Close()
	}()

	// Set database connection pool settings
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.Database.ConnMaxLifetime)

	// RabbitMQ publisher for shop events. The server keeps running without
	// it; write paths skip publishing when the broker is unreachable.
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password)
	if err != nil {
		logger.Warn("rabbitmq publisher unavailable", zap.Error(err))
		publisher = nil
	} else {
		defer func() {
			_ = publisher.Close()
		}()
	}

	// Consumer invalidates the featured cache on shop events.
	consumer, err := rabbitmq.NewConsumer(cfg.RabbitMQ.Host, cfg.RabbitMQ.Port, cfg.RabbitMQ.User, cfg.RabbitMQ.Password, cfg.Internal.APIURL, cfg.Internal.APIKey)
	if err != nil {
		logger.Warn("rabbitmq consumer unavailable", zap.Error(err))
	} else {
		go func() {
			if err := consumer.Start(context.Background()); err != nil {
				logger.Error("shop events consumer stopped", zap.Error(err))
			}
		}()
		defer func() {
			_ = consumer.Close()
		}()
	}

	// Initialize repositories
	UserRepo := userRepo.NewUserRepository(db)
	RedisRepo := redisRepo.NewRepository()
	ShopRepo := shopRepo.NewShopRepository(db)
	ProductRepo := productRepo.NewProductRepository(db)
	TxRepo := txRepo.NewTxRepository(db)

	// Initialize application layers
	UserApp := userapp.NewUserApp(cfg, UserRepo, RedisRepo)
	ShopApp := shopapp.NewShopApp(cfg, TxRepo, ShopRepo, RedisRepo, publisher)
	ProductApp := productapp.NewProductApp(ProductRepo, publisher)

	httpTransport := transport.NewTransport(UserApp, ShopApp, ProductApp, RedisRepo, cfg.Internal.APIKey)

	// Create HTTP server
	server := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      httpTransport,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	logger.Info("HTTP server running", zap.String("port", cfg.Server.Port))
	err = server.ListenAndServe()
	if err != nil {
		logger.Fatal("failed server", zap.Error(err))
	}
}
