package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"

	"github.com/nesquaeke/smartshopaipoland-sub000/internal/catalog"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/config"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/handlers"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/middleware"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/promo"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/recipe"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/repository"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/service"
	"github.com/nesquaeke/smartshopaipoland-sub000/internal/userdata"
	"github.com/nesquaeke/smartshopaipoland-sub000/pkg/logger"
)

func main() {
	// Load .env outside production for local development
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	// Load configuration from environment
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.LogLevel)
	slog.SetDefault(log)

	log.Info("starting grocery price comparison server",
		"port", cfg.Server.Port,
		"host", cfg.Server.Host,
		"log_level", cfg.LogLevel,
	)

	// Initialize reference data repositories
	registry := catalog.NewRegistry()
	productRepo := repository.NewInMemoryProductRepository(registry)
	storeRepo := repository.NewInMemoryStoreRepository()
	dishRepo, err := repository.NewInMemoryDishRepository()
	if err != nil {
		log.Error("failed to load dish seed data", "error", err)
		os.Exit(1)
	}

	// Synthesize the catalog snapshot. SEED=0 seeds from entropy.
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	} else {
		log.Info("using fixed synthesis seed", "seed", seed)
	}
	synthesizer := catalog.NewSynthesizer(registry, catalog.NewSeededSource(seed))

	ctx := context.Background()
	products, err := productRepo.GetAll(ctx)
	if err != nil {
		log.Error("failed to load products", "error", err)
		os.Exit(1)
	}
	stores, err := storeRepo.GetAll(ctx)
	if err != nil {
		log.Error("failed to load stores", "error", err)
		os.Exit(1)
	}
	cat := synthesizer.BuildCatalog(products, stores)
	log.Info("catalog synthesized", "products", cat.Len(), "stores", len(stores))

	// Initialize promo code validator
	promoValidator := promo.NewValidator()
	if cfg.Promo.File != "" {
		if err := promoValidator.LoadFromFile(ctx, cfg.Promo.File); err != nil {
			log.Error("failed to load promo codes", "error", err)
			os.Exit(1)
		}
	} else {
		promoValidator.LoadDefaults()
	}
	log.Info("promo codes loaded", "count", promoValidator.Count())

	// Initialize services
	analyzer := recipe.NewAnalyzer(recipe.NewSubstringMatcher(), registry)
	catalogService := service.NewCatalogService(cat, registry, storeRepo)
	recipeService := service.NewRecipeService(dishRepo, analyzer, cat)

	cartService := userdata.NewCartService(userdata.NewInMemoryCartRepository(), productRepo)
	favoritesRepo := userdata.NewInMemoryFavoritesRepository()
	alertRepo := userdata.NewInMemoryAlertRepository()

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(log)
	productHandler := handlers.NewProductHandler(catalogService, log)
	dishHandler := handlers.NewDishHandler(recipeService, log)
	promoHandler := handlers.NewPromoHandler(promoValidator)
	userHandler := handlers.NewUserDataHandler(cartService, favoritesRepo, alertRepo, log)

	// Create router
	r := chi.NewRouter()

	// Apply middleware
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(log))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS configuration
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token", "api_key"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// Register health check endpoint
	r.Get("/health", healthHandler.ServeHTTP)

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog endpoints
		r.Get("/product", productHandler.ListProducts)
		r.Get("/product/{productId}", productHandler.GetProduct)
		r.Get("/store", productHandler.ListStores)
		r.Get("/category", productHandler.ListCategories)

		// Recipe endpoints
		r.Get("/dish", dishHandler.ListDishes)
		r.Get("/dish/popular", dishHandler.RankPopular)
		r.Post("/dish/compare", dishHandler.CompareDishes)
		r.Get("/dish/{dishId}", dishHandler.GetDish)
		r.Get("/dish/{dishId}/analysis", dishHandler.AnalyzeCost)
		r.Get("/dish/{dishId}/shopping-list", dishHandler.BuildShoppingList)

		// Promo endpoints
		r.Get("/promo/{promoCode}", promoHandler.ValidatePromo)

		// User-scoped endpoints require an API key
		r.Route("/user/{userId}", func(r chi.Router) {
			r.Use(middleware.APIKeyAuth(cfg.Auth))

			r.Get("/cart", userHandler.GetCart)
			r.Post("/cart", userHandler.AddToCart)
			r.Delete("/cart", userHandler.ClearCart)
			r.Get("/favorites", userHandler.GetFavorites)
			r.Post("/favorites", userHandler.ToggleFavorite)
			r.Get("/alerts", userHandler.GetAlerts)
			r.Post("/alerts", userHandler.CreateAlert)
		})
	})

	// Create HTTP server
	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Info("server listening", "address", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	log.Info("server stopped gracefully")
}
