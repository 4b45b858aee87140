package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"grafica-be/internal/config"
	"grafica-be/internal/db"
	"grafica-be/internal/files"
	"grafica-be/internal/logger"
	"grafica-be/internal/notification"
	"grafica-be/internal/order"
	"grafica-be/internal/product"
	"grafica-be/internal/transport"
	"grafica-be/internal/user"

	"go.uber.org/zap"
)

func main() {
	cfg := config.LoadConfig()
	logger.Init(cfg.AppEnv)
	defer logger.Sync()

	database := db.InitDB(cfg)
	defer database.Close()

	productRepo := product.NewRepository(database)
	productSvc := product.NewService(productRepo)

	notifRepo := notification.NewRepository(database)
	notifSvc := notification.NewService(notifRepo)

	orderRepo := order.NewRepository(database)
	orderSvc := order.NewService(orderRepo, productSvc, notifSvc)

	userRepo := user.NewRepository(database)
	userSvc := user.NewService(userRepo)

	handler := &transport.Handler{
		Products:      productSvc,
		Orders:        orderSvc,
		Notifications: notifSvc,
		Users:         userSvc,
		Files:         files.NewDiskStorage(cfg.UploadDir),
	}

	srv := &http.Server{
		Addr:    ":" + cfg.AppPort,
		Handler: transport.NewRouter(handler),
	}

	go func() {
		logger.L().Info("server running", zap.String("port", cfg.AppPort))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.L().Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.L().Error("forced shutdown", zap.Error(err))
	}
	logger.L().Info("server stopped")
}
