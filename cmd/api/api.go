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

	"github.com/Raguramgit/retro-restaurant/docs"
	"github.com/Raguramgit/retro-restaurant/internal/catalog"
	"github.com/Raguramgit/retro-restaurant/internal/ratelimiter"
	"github.com/Raguramgit/retro-restaurant/internal/service"
	"github.com/Raguramgit/retro-restaurant/internal/session"
	"github.com/Raguramgit/retro-restaurant/internal/store/mongo"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/shopspring/decimal"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config          config
	logger          *zap.SugaredLogger
	rateLimiter     ratelimiter.Limiter
	catalog         *catalog.Catalog
	sessions        *session.Manager
	storage         *mongo.Storage
	checkoutService *service.CheckoutService
	reviewService   *service.ReviewService
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	gstRate     decimal.Decimal
	restaurant  restaurantConfig
	store       storeConfig
	mongo       mongoConfig
}

type restaurantConfig struct {
	Name    string
	Phone   string
	Address string
	Hours   string
	Email   string
}

type storeConfig struct {
	Backend string
	DataDir string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.RateLimiterMiddleware)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", app.healthCheckHandler)

		r.Get("/menu", app.listMenuHandler)
		r.Get("/menu/categories", app.listCategoriesHandler)
		r.Get("/menu/{item_id}", app.getMenuItemHandler)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", app.getCartHandler)
			r.Delete("/", app.clearCartHandler)
			r.Post("/items", app.addCartItemHandler)
			r.Put("/items/{item_id}", app.updateCartItemHandler)
			r.Delete("/items/{item_id}", app.removeCartItemHandler)
		})

		r.Post("/checkout", app.checkoutHandler)
		r.Get("/orders", app.listOrdersHandler)
		r.Get("/orders/{order_id}", app.getOrderHandler)

		r.Get("/reviews", app.listReviewsHandler)
		r.Post("/reviews", app.createReviewHandler)

		r.Get("/contact", app.contactHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

func (app *application) RateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Retro Restaurant"
	docs.SwaggerInfo.Description = "Single-tenant restaurant ordering API"
	docs.SwaggerInfo.Version = version
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server has started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
