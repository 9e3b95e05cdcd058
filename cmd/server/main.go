package main // Entry point package

import (
	"context"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"github.com/rentalworks/rental-portal/internal/config"
	"github.com/rentalworks/rental-portal/internal/handler"
	"github.com/rentalworks/rental-portal/internal/middleware"
	"github.com/rentalworks/rental-portal/internal/proxy"
	"github.com/rentalworks/rental-portal/internal/router"
	"github.com/rentalworks/rental-portal/internal/service"
	"github.com/rentalworks/rental-portal/internal/session"
	"github.com/rentalworks/rental-portal/internal/upstream"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()
	cfg := config.Load()

	// Redis backs the session store, response cache and rate limiter.
	// Without it the portal still runs: sessions fall back to process
	// memory and the cache and limiter become pass-throughs.
	rdb := config.NewRedisClient()
	var store session.Store
	if rdb != nil {
		store = session.NewRedisStore(rdb, cfg.SessionTTL)
	} else {
		log.Println("redis unavailable, using in-memory session store")
		store = session.NewMemoryStore()
	}

	rpc := upstream.New(cfg.UpstreamURL, cfg.UpstreamNamespace, cfg.UpstreamTimeout)
	audit := service.NewAMQPStagePublisher()

	auth := service.NewAuthService(rpc, store)
	catalog := service.NewCatalogService(rpc)
	customers := service.NewCustomerService(rpc, store)
	cart := service.NewCartService(rpc, store)
	bookings := service.NewBookingService(rpc, store, audit)
	staff := service.NewStaffService(rpc)
	owners := service.NewOwnerService(rpc)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	catalog.StartBannerRefresher(ctx, cfg.BannerRefresh)

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	guard := middleware.SessionAuth(cfg.SessionSecret, cfg.SessionCookie)
	limit := middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb)
	cache := middleware.NewRedisCache(config.LoadCacheConfig(), rdb)

	base := handler.Base{Store: store, Cookie: cfg.SessionCookie}
	router.RegisterRoutes(e)
	router.RegisterCatalog(e, handler.NewCatalogHandler(base, catalog), cache)
	router.RegisterAuth(e, handler.NewAuthHandler(base, cfg, auth), guard)
	bookingH := handler.NewBookingHandler(base, bookings)
	router.RegisterStorefront(e, handler.NewCustomerHandler(base, customers), handler.NewCartHandler(base, cart), bookingH, guard, limit)
	router.RegisterStaff(e, handler.NewStaffHandler(base, staff), bookingH, guard, limit)
	router.RegisterOwner(e, handler.NewOwnerHandler(base, owners), guard, limit)

	// Raw backend pass-through for direct RPC calls and file downloads.
	proxy.New(cfg.UpstreamURL, 0).Register(e)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s, upstream=%s)", addr, cfg.Env, cfg.UpstreamURL)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
