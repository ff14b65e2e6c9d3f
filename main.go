package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"storefront/config"
	"storefront/consumers"
	"storefront/controllers"
	"storefront/database"
	"storefront/logging"
	"storefront/middlewares"
	"storefront/notify"
	"storefront/rabbitmq"
	"storefront/session"
	"storefront/store"
)

func main() {
	// .env 可选
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("Failed to load .env: %v", err)
	}

	// 加载配置
	cfg := config.LoadConfig()
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	logger, err := logging.New(cfg.LogLevel, cfg.Environment)
	if err != nil {
		log.Fatalf("Logger initialization failed: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 初始化数据库
	db, err := database.InitDB(ctx, cfg)
	if err != nil {
		logger.Fatal("database initialization failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	defer db.Close()

	blobs, err := store.NewCached(database.NewBlobStore(db), cfg.StoreCacheSize)
	if err != nil {
		logger.Fatal("store cache initialization failed", zap.Error(err))
	}

	publishers := notify.Fanout{notify.Log{Logger: logger}}

	// 初始化RabbitMQ（未配置时事件只写日志）
	if cfg.RabbitMQURL != "" {
		rmq, err := rabbitmq.NewRabbitMQ(cfg)
		if err != nil {
			logger.Fatal("rabbitmq initialization failed", zap.Error(err))
		}
		defer rmq.Close()

		// 设置队列和交换机
		if err := rmq.SetupQueues(); err != nil {
			logger.Fatal("failed to setup rabbitmq queues", zap.Error(err))
		}

		// 启动消息消费者
		if err := consumers.NewEventConsumer(logger).Start(rmq.Channel, cfg); err != nil {
			logger.Fatal("failed to start event consumer", zap.Error(err))
		}
		publishers = append(publishers, rmq)
	}

	limiter, err := middlewares.NewRateLimiter(cfg.RateLimitRequests, cfg.RateLimitWindow, 10000)
	if err != nil {
		logger.Fatal("rate limiter initialization failed", zap.Error(err))
	}

	handler := controllers.NewHandler(controllers.Deps{
		Sessions: session.NewManager(blobs, logger, cfg.Keys),
		Events:   publishers,
		Toasts:   notify.NewToasts(cfg.NotificationTTL),
		Logger:   logger,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           controllers.NewRouter(cfg, handler, limiter, logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("storefront starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
	logger.Info("storefront stopped")
}
