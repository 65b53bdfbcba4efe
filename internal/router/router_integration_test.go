//go:build integration

package router_test

// End-to-end tests against real Postgres + Redis via testcontainers.
// Run with: go test -tags integration ./internal/router/... -v

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/abdullah9786/nawab-products/internal/cache"
	"github.com/abdullah9786/nawab-products/internal/config"
	"github.com/abdullah9786/nawab-products/internal/infra"
	"github.com/abdullah9786/nawab-products/internal/router"
	"github.com/abdullah9786/nawab-products/internal/worker"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcPostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	tcRedis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// ── Helpers ──────────────────────────────────────────────────────────────────

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func do(t *testing.T, srv *httptest.Server, method, path string, body *bytes.Buffer, token string) *http.Response {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req, err := http.NewRequest(method, srv.URL+path, body)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := srv.Client().Do(req)
	require.NoError(t, err)
	return resp
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
	Message string          `json:"message"`
}

func decode(t *testing.T, resp *http.Response) envelope {
	t.Helper()
	defer resp.Body.Close()
	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return env
}

// ── Test Suite Setup ─────────────────────────────────────────────────────────

type testEnv struct {
	server *httptest.Server
	token  string
}

func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	ctx := context.Background()

	pgC, err := tcPostgres.RunContainer(ctx,
		testcontainers.WithImage("postgres:16-alpine"),
		tcPostgres.WithDatabase("nawab_test"),
		tcPostgres.WithUsername("nawab"),
		tcPostgres.WithPassword("nawab"),
		testcontainers.WithWaitStrategy(tcPostgres.BasicWaitStrategies()...),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pgC.Terminate(ctx) })

	pgURL, err := pgC.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	rdC, err := tcRedis.RunContainer(ctx, testcontainers.WithImage("redis:7-alpine"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdC.Terminate(ctx) })

	rdURL, err := rdC.ConnectionString(ctx)
	require.NoError(t, err)

	cfg := &config.Config{
		Env:                 "test",
		JWTSecret:           "test-secret-key",
		JWTExpirationHours:  8,
		DatabaseURL:         pgURL,
		RedisURL:            rdURL,
		CacheTTL:            time.Minute,
		AdminEmail:          "admin@e2e.test",
		AdminPassword:       "nawab-e2e-2025",
		AdminName:           "Admin E2E",
		BrandName:           "NAWAB KHANA",
		CurrencySymbol:      "₹",
		PriceLocale:         "en-IN",
		SiteURL:             "https://nawabkhana.test",
		DefaultProductImage: "https://img.test/default.jpg",
	}

	require.NoError(t, infra.Migrate(cfg.DatabaseURL))

	conn := infra.NewConnector(cfg.DatabaseURL)
	db, err := conn.DB(ctx)
	require.NoError(t, err)

	rdb, err := infra.NewRedis(cfg.RedisURL)
	require.NoError(t, err)

	r := router.New(cfg, router.Deps{
		DB:     db,
		Health: conn,
		Redis:  rdb,
		Cache:  cache.NewRedis(rdb),
		Queue:  worker.NewDispatcher(rdb),
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	seed := decode(t, do(t, srv, http.MethodGet, "/api/seed", nil, ""))
	require.True(t, seed.Success, seed.Message)

	loginResp := do(t, srv, http.MethodPost, "/api/auth/login",
		jsonBody(t, map[string]string{"email": cfg.AdminEmail, "password": cfg.AdminPassword}), "")
	require.Equal(t, http.StatusOK, loginResp.StatusCode)
	var login struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(decode(t, loginResp).Data, &login))
	require.NotEmpty(t, login.Token)

	return &testEnv{server: srv, token: login.Token}
}

// ── Tests ────────────────────────────────────────────────────────────────────

func TestE2E_CatalogLifecycle(t *testing.T) {
	env := setupTestEnv(t)

	// 1. Category with derived slug
	catResp := do(t, env.server, http.MethodPost, "/api/categories",
		jsonBody(t, map[string]any{"name": "Saffron"}), env.token)
	require.Equal(t, http.StatusCreated, catResp.StatusCode)
	var cat struct {
		ID   string `json:"id"`
		Slug string `json:"slug"`
	}
	require.NoError(t, json.Unmarshal(decode(t, catResp).Data, &cat))
	assert.Equal(t, "saffron", cat.Slug)

	// 2. Product with two slabs
	product := map[string]any{
		"name":        "Kashmiri Saffron",
		"slug":        "kashmiri-saffron",
		"category":    "Saffron",
		"description": "Grade A Mongra saffron.",
		"pricingType": "WEIGHT",
		"featured":    true,
		"prices": []map[string]any{
			{"quantity": 1, "unit": "g", "price": 450},
			{"quantity": 5, "unit": "g", "price": 1200},
		},
	}
	createResp := do(t, env.server, http.MethodPost, "/api/products", jsonBody(t, product), env.token)
	require.Equal(t, http.StatusCreated, createResp.StatusCode)
	createResp.Body.Close()

	// 3. Duplicate slug is rejected
	dupResp := do(t, env.server, http.MethodPost, "/api/products", jsonBody(t, product), env.token)
	assert.Equal(t, http.StatusBadRequest, dupResp.StatusCode)
	assert.Equal(t, "A product with this slug already exists", decode(t, dupResp).Error)

	// 4. Storefront listing warms the cache
	listResp := do(t, env.server, http.MethodGet, "/api/storefront/products?category=saffron", nil, "")
	require.Equal(t, http.StatusOK, listResp.StatusCode)
	var listing struct {
		Products []struct {
			Slug       string `json:"slug"`
			PriceLabel string `json:"priceLabel"`
		} `json:"products"`
	}
	require.NoError(t, json.Unmarshal(decode(t, listResp).Data, &listing))
	require.Len(t, listing.Products, 1)
	assert.Equal(t, "₹450 – ₹1,200", listing.Products[0].PriceLabel)

	// 5. Renaming the category cascades to products and invalidates the cache
	renResp := do(t, env.server, http.MethodPut, "/api/categories/"+cat.ID,
		jsonBody(t, map[string]any{"name": "Premium Saffron"}), env.token)
	require.Equal(t, http.StatusOK, renResp.StatusCode)
	renResp.Body.Close()

	getResp := do(t, env.server, http.MethodGet, "/api/products/kashmiri-saffron", nil, "")
	require.Equal(t, http.StatusOK, getResp.StatusCode)
	var got struct {
		Category string `json:"category"`
	}
	require.NoError(t, json.Unmarshal(decode(t, getResp).Data, &got))
	assert.Equal(t, "Premium Saffron", got.Category)

	// 6. Replacing slabs recomputes the range
	updResp := do(t, env.server, http.MethodPut, "/api/products/kashmiri-saffron",
		jsonBody(t, map[string]any{"prices": []map[string]any{{"quantity": 10, "unit": "g", "price": 2100}}}),
		env.token)
	require.Equal(t, http.StatusOK, updResp.StatusCode)
	var upd struct {
		MinPrice float64 `json:"minPrice"`
		MaxPrice float64 `json:"maxPrice"`
	}
	require.NoError(t, json.Unmarshal(decode(t, updResp).Data, &upd))
	assert.Equal(t, 2100.0, upd.MinPrice)
	assert.Equal(t, 2100.0, upd.MaxPrice)

	// 7. Unauthenticated delete leaves the product alone
	anonDel := do(t, env.server, http.MethodDelete, "/api/products/kashmiri-saffron", nil, "")
	assert.Equal(t, http.StatusUnauthorized, anonDel.StatusCode)
	anonDel.Body.Close()

	delResp := do(t, env.server, http.MethodDelete, "/api/products/kashmiri-saffron", nil, env.token)
	assert.Equal(t, http.StatusOK, delResp.StatusCode)
	delResp.Body.Close()

	goneResp := do(t, env.server, http.MethodGet, "/api/storefront/products/kashmiri-saffron", nil, "")
	assert.Equal(t, http.StatusNotFound, goneResp.StatusCode)
	goneResp.Body.Close()
}

func TestE2E_ContactIsQueued(t *testing.T) {
	env := setupTestEnv(t)

	resp := do(t, env.server, http.MethodPost, "/api/contact", jsonBody(t, map[string]string{
		"name": "Ayesha", "email": "ayesha@example.com", "message": "Do you ship to Pune?",
	}), "")
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	resp.Body.Close()

	health := do(t, env.server, http.MethodGet, "/health", nil, "")
	assert.Equal(t, http.StatusOK, health.StatusCode)
	health.Body.Close()
}

func TestE2E_SeedIsIdempotent(t *testing.T) {
	env := setupTestEnv(t)

	again := decode(t, do(t, env.server, http.MethodGet, "/api/seed", nil, ""))
	assert.False(t, again.Success)
	assert.Equal(t, "Admin user already exists. Login with existing credentials.", again.Message)
}
