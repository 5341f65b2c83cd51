package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/techvault/storefront/internal/api/handlers"
	"github.com/techvault/storefront/internal/api/middleware"
	"github.com/techvault/storefront/internal/cart"
	"github.com/techvault/storefront/internal/catalog"
	"github.com/techvault/storefront/internal/config"
	"github.com/techvault/storefront/internal/health"
	"github.com/techvault/storefront/internal/metrics"
	"github.com/techvault/storefront/internal/orders"
	"github.com/techvault/storefront/internal/pricing"
	"github.com/techvault/storefront/internal/storage"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Redis setup
	redisClient, err := storage.NewRedisClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Redis connection closed")
		}
	}()

	catalogService, err := catalog.New(cfg.Catalog)
	if err != nil {
		slog.Error("❌ Error loading product catalog", "error", err.Error())
		os.Exit(1)
	}

	cartStorage := storage.NewRedis(redisClient, cfg.Cart.StorageKey)
	cartStore := cart.NewStore(context.Background(), cartStorage, logger)
	calculator := pricing.NewCalculator(cfg.Pricing)
	orderService := orders.NewService(cartStore, calculator)

	cartHandler := handlers.NewCartHandler(cartStore, catalogService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	checkoutHandler := handlers.NewCheckoutHandler(cartStore, calculator, orderService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storefront initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("GET /api/v1/products", catalogHandler.ListProducts())
	routerMux.HandleFunc("GET /api/v1/products/featured", catalogHandler.FeaturedProducts())
	routerMux.HandleFunc("GET /api/v1/products/{id}", catalogHandler.GetProduct())
	routerMux.HandleFunc("GET /api/v1/products/{id}/related", catalogHandler.RelatedProducts())
	routerMux.HandleFunc("GET /api/v1/search", catalogHandler.SearchProducts())
	routerMux.HandleFunc("GET /api/v1/cart", cartHandler.GetCart())
	routerMux.HandleFunc("POST /api/v1/cart/items", cartHandler.AddItem())
	routerMux.HandleFunc("PUT /api/v1/cart/items", cartHandler.SetQuantity())
	routerMux.HandleFunc("DELETE /api/v1/cart/items/{id}", cartHandler.RemoveItem())
	routerMux.HandleFunc("DELETE /api/v1/cart", cartHandler.Clear())
	routerMux.HandleFunc("POST /api/v1/checkout/quote", checkoutHandler.Quote())
	routerMux.HandleFunc("POST /api/v1/orders", checkoutHandler.CreateOrder())
	routerMux.HandleFunc("GET /api/v1/orders/{id}", checkoutHandler.GetOrder())
	routerMux.HandleFunc("PATCH /api/v1/orders/{id}/status", checkoutHandler.UpdateOrderStatus())
	routerMux.Handle("GET /metrics", metrics.Handler())
	routerMux.Handle("GET /health", healthHandler.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = middleware.Logging(handler)
	handler = metrics.Middleware(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
