package main

import (
	"context"
	"time"

	"github.com/Raguramgit/retro-restaurant/internal/catalog"
	"github.com/Raguramgit/retro-restaurant/internal/env"
	"github.com/Raguramgit/retro-restaurant/internal/ratelimiter"
	"github.com/Raguramgit/retro-restaurant/internal/repo"
	"github.com/Raguramgit/retro-restaurant/internal/service"
	"github.com/Raguramgit/retro-restaurant/internal/session"
	"github.com/Raguramgit/retro-restaurant/internal/store/jsonfile"
	"github.com/Raguramgit/retro-restaurant/internal/store/mongo"
	"github.com/Raguramgit/retro-restaurant/internal/whatsapp"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const version = "0.1.0"

//	@title			Retro Restaurant
//	@description	Single-tenant restaurant ordering API: menu, cart, checkout with GST, reviews and WhatsApp bill hand-off.

//	@contact.name	Retro Restaurant
//	@contact.email	contact@retrorestaurant.com

// @BasePath	/api/v1
func main() {
	_ = godotenv.Load()

	cfg := config{
		addr:   env.GetString("ADDR", ":8080"),
		apiURL: env.GetString("EXTERNAL_URL", "localhost:8080"),
		env:    env.GetString("ENV", "development"),
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: env.GetInt("RATELIMITER_REQUESTS_COUNT", 20),
			TimeFrame:            time.Second * 5,
			Enabled:              env.GetBool("RATE_LIMITER_ENABLED", true),
		},
		gstRate: decimal.NewFromFloat(env.GetFloat("GST_RATE", 0.18)),
		restaurant: restaurantConfig{
			Name:    env.GetString("RESTAURANT_NAME", "Retro Restaurant"),
			Phone:   env.GetString("RESTAURANT_PHONE", "+918056443430"),
			Address: env.GetString("RESTAURANT_ADDRESS", "123 Kanyakumari Main Road, Radhapuram, Tamil Nadu 627111"),
			Hours:   env.GetString("RESTAURANT_HOURS", "Monday - Sunday, 11:00 AM - 11:00 PM"),
			Email:   env.GetString("RESTAURANT_EMAIL", "contact@retrorestaurant.com"),
		},
		store: storeConfig{
			Backend: env.GetString("STORE", "file"),
			DataDir: env.GetString("DATA_DIR", "data"),
		},
		mongo: mongoConfig{
			URI:      env.GetString("MONGO_URI", "mongodb://localhost:27017"),
			Database: env.GetString("MONGO_DATABASE", "retro_restaurant"),
			Timeout:  time.Second * 10,
		},
	}

	// logger
	logger := zap.Must(zap.NewProduction()).Sugar()
	defer logger.Sync()

	// rate limiter
	rateLimiter := ratelimiter.NewFixedWindowLimiter(
		cfg.rateLimiter.RequestsPerTimeFrame,
		cfg.rateLimiter.TimeFrame,
	)

	// catalog
	menu, err := catalog.Load()
	if err != nil {
		logger.Fatalw("failed to load menu catalog", "error", err)
	}
	logger.Infow("menu catalog loaded", "items", menu.Len())

	// stores
	var (
		orderRepo  repo.OrderRepository
		reviewRepo repo.ReviewRepository
		storage    *mongo.Storage
	)
	switch cfg.store.Backend {
	case "mongo":
		storage, err = mongo.New(mongo.Config{
			URI:      cfg.mongo.URI,
			Database: cfg.mongo.Database,
			Timeout:  cfg.mongo.Timeout,
		})
		if err != nil {
			logger.Fatalw("failed to connect to MongoDB", "error", err)
		}
		logger.Info("connected to MongoDB")

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := storage.CreateIndexes(ctx); err != nil {
			logger.Warnw("failed to create indexes", "error", err)
		}
		cancel()

		orderRepo = mongo.NewOrderRepository(storage.Database())
		reviewRepo = mongo.NewReviewRepository(storage.Database())
	default:
		orderRepo, reviewRepo, err = jsonfile.New(cfg.store.DataDir)
		if err != nil {
			logger.Fatalw("failed to open data directory", "error", err)
		}
		logger.Infow("using JSON file store", "dir", cfg.store.DataDir)
	}

	restaurant := whatsapp.Info{
		Name:    cfg.restaurant.Name,
		Address: cfg.restaurant.Address,
	}

	checkoutService := service.NewCheckoutService(orderRepo, menu, cfg.gstRate, restaurant, logger)
	reviewService := service.NewReviewService(reviewRepo, logger)

	app := &application{
		config:          cfg,
		logger:          logger,
		rateLimiter:     rateLimiter,
		catalog:         menu,
		sessions:        session.NewManager(),
		storage:         storage,
		checkoutService: checkoutService,
		reviewService:   reviewService,
	}

	mux := app.mount()

	logger.Fatal(app.run(mux))
}
