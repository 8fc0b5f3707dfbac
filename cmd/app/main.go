package main

import (
	"context"
	"log"
	"time"

	"github.com/Andybrookes-dev/Space-Store/internal/config"
	"github.com/Andybrookes-dev/Space-Store/internal/db"
	"github.com/Andybrookes-dev/Space-Store/internal/metrics"
	"github.com/Andybrookes-dev/Space-Store/internal/repository"
	"github.com/Andybrookes-dev/Space-Store/internal/services"
	"github.com/Andybrookes-dev/Space-Store/internal/session"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
)

func main() {
	config.Load()

	// ======================
	// INFRA
	// ======================
	pool, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}
	defer pool.Close()

	if err := db.Migrate(context.Background(), pool); err != nil {
		log.Fatal(err)
	}

	var store session.Store
	switch config.SessionBackend() {
	case "redis":
		store = session.NewRedisStore(config.RedisAddr(), config.RedisPassword())
	default:
		store = session.NewMemoryStore()
	}
	sessionTTL := time.Duration(config.SessionTTLHours()) * time.Hour

	// ======================
	// REPOSITORIES
	// ======================
	userRepo := repository.NewUserRepository(pool)
	categoryRepo := repository.NewCategoryRepository(pool)
	productRepo := repository.NewProductRepository(pool)
	cartRepo := repository.NewCartRepository(pool)
	orderRepo := repository.NewOrderRepository(pool)

	// ======================
	// SERVICES
	// ======================
	authSvc := services.NewAuthService(userRepo)
	categorySvc := services.NewCategoryService(categoryRepo)
	productSvc := services.NewProductService(productRepo)
	cartSvc := services.NewCartService(cartRepo, productRepo)
	checkoutSvc := services.NewCheckoutService(orderRepo)
	orderSvc := services.NewOrderService(orderRepo)

	// ======================
	// ECHO
	// ======================
	e := echo.New()
	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(metrics.Middleware())

	e.GET("/metrics", metrics.Handler())

	api := e.Group("/api")

	// ======================
	// ROUTES (ONLY REGISTRATION)
	// ======================
	registerAuthRoutes(api, authSvc, store, sessionTTL)
	registerCategoryRoutes(api, categorySvc, store)
	registerProductRoutes(api, productSvc, store)
	registerCartRoutes(api, cartSvc, store)
	registerOrderRoutes(api, checkoutSvc, orderSvc, store)

	// ======================
	// SERVER
	// ======================
	e.Logger.Fatal(e.Start(":" + config.Port()))
}
