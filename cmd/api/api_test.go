package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Raguramgit/retro-restaurant/internal/catalog"
	"github.com/Raguramgit/retro-restaurant/internal/ratelimiter"
	"github.com/Raguramgit/retro-restaurant/internal/service"
	"github.com/Raguramgit/retro-restaurant/internal/session"
	"github.com/Raguramgit/retro-restaurant/internal/store/jsonfile"
	"github.com/Raguramgit/retro-restaurant/internal/whatsapp"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestApplication(t *testing.T) *application {
	t.Helper()

	logger := zap.NewNop().Sugar()

	menu, err := catalog.Load()
	require.NoError(t, err)

	orderRepo, reviewRepo, err := jsonfile.New(t.TempDir())
	require.NoError(t, err)

	cfg := config{
		addr:    ":0",
		env:     "test",
		gstRate: decimal.RequireFromString("0.18"),
		restaurant: restaurantConfig{
			Name:    "Retro Restaurant",
			Phone:   "+918056443430",
			Address: "123 Kanyakumari Main Road, Radhapuram, Tamil Nadu 627111",
			Hours:   "Monday - Sunday, 11:00 AM - 11:00 PM",
			Email:   "contact@retrorestaurant.com",
		},
		rateLimiter: ratelimiter.Config{
			RequestsPerTimeFrame: 1000,
			TimeFrame:            time.Second * 5,
			Enabled:              false,
		},
		store: storeConfig{
			Backend: "file",
			DataDir: t.TempDir(),
		},
	}

	restaurant := whatsapp.Info{
		Name:    cfg.restaurant.Name,
		Address: cfg.restaurant.Address,
	}

	return &application{
		config:          cfg,
		logger:          logger,
		rateLimiter:     ratelimiter.NewFixedWindowLimiter(cfg.rateLimiter.RequestsPerTimeFrame, cfg.rateLimiter.TimeFrame),
		catalog:         menu,
		sessions:        session.NewManager(),
		checkoutService: service.NewCheckoutService(orderRepo, menu, cfg.gstRate, restaurant, logger),
		reviewService:   service.NewReviewService(reviewRepo, logger),
	}
}

func executeRequest(req *http.Request, mux http.Handler) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	mux.ServeHTTP(rr, req)

	return rr
}

func jsonRequest(t *testing.T, method, path string, body any) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	return req
}

func decodeData(t *testing.T, rr *httptest.ResponseRecorder, dst any) {
	t.Helper()

	var envelope struct {
		Data json.RawMessage `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &envelope))
	require.NoError(t, json.Unmarshal(envelope.Data, dst))
}
