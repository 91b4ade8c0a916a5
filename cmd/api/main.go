package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "go.uber.org/automaxprocs"

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"store-visit/internal/core/auth"
	"store-visit/internal/core/cache"
	"store-visit/internal/core/config"
	"store-visit/internal/core/database"
	"store-visit/internal/core/logger"
	"store-visit/internal/core/server"
	"store-visit/internal/domain"
	"store-visit/internal/repo"
	"store-visit/internal/service"
	"store-visit/internal/transport/http/handler"
	"store-visit/internal/transport/http/router"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load(os.Getenv("CONFIG_PATH"))
	log, cleanup := logger.New(cfg.Log.Level, cfg.Log.JSON)
	defer cleanup()

	db := mustOpenDB(cfg, log)
	log.Info("database connected", zap.String("driver", cfg.DB.Driver))

	if cfg.DB.AutoMigrate {
		if err := db.AutoMigrate(&domain.Store{}, &domain.User{}, &domain.Order{}, &domain.Visit{}); err != nil {
			log.Fatal("automigrate failed", zap.Error(err))
		}
		log.Info("automigrate done")
	}

	tokens := &auth.Tokens{
		AccessSecret:  []byte(cfg.JWT.AccessSecret),
		RefreshSecret: []byte(cfg.JWT.RefreshSecret),
		Issuer:        cfg.JWT.Issuer,
		AccessTTL:     time.Duration(cfg.JWT.AccessTokenTTLMin) * time.Minute,
		RefreshTTL:    time.Duration(cfg.JWT.RefreshTokenTTLMin) * time.Minute,
	}

	users := repo.NewUserRepo(db)
	stores := repo.NewStoreRepo(db)
	orders := repo.NewOrderRepo(db)
	visits := repo.NewVisitRepo(db)

	orderSvc := service.NewOrderService(orders, stores, visits)
	if cfg.Redis.Addr != "" {
		ttl := time.Duration(cfg.Redis.StoreCacheTTLSec) * time.Second
		orderSvc = orderSvc.WithStoreCache(cache.New(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB), ttl)
		log.Info("store cache enabled", zap.String("addr", cfg.Redis.Addr), zap.Duration("ttl", ttl))
	}
	authSvc := service.NewAuthService(users, tokens)

	authH := handler.NewAuthHandler(authSvc)
	custH := handler.NewCustomerHandler(orderSvc, cfg.PageLimit)

	r := router.NewAPIEngine(log, cfg, tokens, users, authH, custH)

	addr := server.Addr(cfg.App.HTTP.Host, cfg.App.HTTP.Port)
	srv := server.BuildServer(
		addr, r,
		time.Duration(cfg.App.HTTP.ReadTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.WriteTimeoutSec)*time.Second,
		time.Duration(cfg.App.HTTP.IdleTimeoutSec)*time.Second,
	)

	host4human := cfg.App.HTTP.Host
	if host4human == "" || host4human == "0.0.0.0" {
		host4human = "127.0.0.1"
	}
	baseURL := "http://" + host4human + ":" + fmt.Sprint(cfg.App.HTTP.Port)
	log.Info("customer api starting",
		zap.String("addr", addr),
		zap.String("open", baseURL),
		zap.String("health", baseURL+"/health"),
		zap.String("api_v1", baseURL+"/api/v1"),
	)

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("customer api start FAILED", zap.Error(err))
		}
	}()
	log.Info("customer api started SUCCESS")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(ctx)
	log.Info("customer api stopped gracefully")
}

func mustOpenDB(cfg *config.Config, l *zap.Logger) *gorm.DB {
	db, err := database.NewGorm(database.Opts{
		Driver:             cfg.DB.Driver,
		DSN:                cfg.DB.DSN,
		MaxOpenConns:       cfg.DB.MaxOpenConns,
		MaxIdleConns:       cfg.DB.MaxIdleConns,
		ConnMaxLifetimeMin: cfg.DB.ConnMaxLifetimeMin,
		LogLevel:           cfg.DB.LogLevel,
	})
	if err != nil {
		l.Fatal("db open", zap.Error(err))
	}
	return db
}
