package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/nuelxcodev/luxe/configs"
	"github.com/nuelxcodev/luxe/internal/adapter/catalog"
	"github.com/nuelxcodev/luxe/internal/adapter/http/middleware"
	"github.com/nuelxcodev/luxe/internal/adapter/repo"
	"github.com/nuelxcodev/luxe/internal/usecase"
)

type stubGenerator struct{}

func (stubGenerator) Generate(context.Context, usecase.GenerateRequest) (usecase.GenerateResult, error) {
	return usecase.GenerateResult{}, errors.New("offline")
}

type stubClipboard struct{ copied string }

func (s *stubClipboard) Copy(text string) error {
	s.copied = text
	return nil
}

func testConfig() configs.Config {
	var cfg configs.Config
	cfg.App.Name = "luxe-api-test"
	cfg.App.HTTPAddr = ":0"
	cfg.Security.JWTSecret = "test-secret"
	cfg.Security.Issuer = "luxe-api"
	cfg.Security.Audience = "luxe-app"
	cfg.Security.TTL = time.Hour
	return cfg
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := testConfig()
	log := slog.New(slog.DiscardHandler)

	store := catalog.NewStore()
	sessions := repo.NewMemorySessionRepo()

	carts := usecase.NewCartService(store, log)
	nav := usecase.NewNavigator(store, log)
	flow := usecase.NewCheckoutFlow(0, log)
	profiles := usecase.NewProfileService(&stubClipboard{}, log)
	assistant := usecase.NewAssistant(stubGenerator{}, store, time.Second, 0, log)

	authz := middleware.NewAuthz(cfg, sessions)
	handlers := Handlers{
		Auth:       NewAuthHandler(cfg, store, sessions, nav),
		Catalog:    NewCatalogHandler(store),
		Cart:       NewCartHandler(carts),
		Checkout:   NewCheckoutHandler(flow),
		Navigation: NewNavigationHandler(nav),
		Profile:    NewProfileHandler(profiles),
		Assistant:  NewAssistantHandler(assistant, store),
	}
	return NewRouter(handlers, authz, log)
}

func doJSON(t *testing.T, r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "alex.johnson@example.com",
		"password": "luxe-demo",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestHealthz(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/healthz", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "alex.johnson@example.com",
		"password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAppRoutesRequireToken(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/app/cart", "", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCatalogIsPublic(t *testing.T) {
	r := newTestRouter(t)
	w := doJSON(t, r, http.MethodGet, "/v1/catalog/products", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []productJSON `json:"products"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Products, 3)
	require.Equal(t, "299.99", resp.Products[0].Price)
}

func TestCartFlow(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/app/cart/items", token, gin.H{"productId": "1", "quantity": 2})
	require.Equal(t, http.StatusOK, w.Code)

	var cart cartJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Equal(t, 2, cart.ItemCount)
	require.Equal(t, "599.98", cart.Total)

	// same product merges instead of a second line
	w = doJSON(t, r, http.MethodPost, "/v1/app/cart/items", token, gin.H{"productId": "1", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Len(t, cart.Items, 1)
	require.Equal(t, 3, cart.ItemCount)

	w = doJSON(t, r, http.MethodDelete, "/v1/app/cart/items/1", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Empty(t, cart.Items)
	require.Equal(t, "0.00", cart.Total)
}

func TestCheckoutHappyPath(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/app/cart/items", token, gin.H{"productId": "2", "quantity": 1})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodPost, "/v1/app/checkout", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var co checkoutJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &co))
	require.Equal(t, 1, co.Step)
	require.Equal(t, "189.00", co.Total)

	w = doJSON(t, r, http.MethodPost, "/v1/app/checkout/next", token, gin.H{"fields": gin.H{"street": "1 Demo St"}})
	require.Equal(t, http.StatusOK, w.Code)
	w = doJSON(t, r, http.MethodPost, "/v1/app/checkout/next", token, gin.H{"fields": gin.H{"card": "4242"}})
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &co))
	require.Equal(t, 3, co.Step)

	w = doJSON(t, r, http.MethodPost, "/v1/app/checkout/place-order", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var order orderJSON
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &order))
	require.Equal(t, "189.00", order.Total)

	// cart cleared, order logged
	var cart cartJSON
	w = doJSON(t, r, http.MethodGet, "/v1/app/cart", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cart))
	require.Empty(t, cart.Items)

	w = doJSON(t, r, http.MethodGet, "/v1/app/orders", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var orders struct {
		Orders []orderJSON `json:"orders"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &orders))
	require.NotEmpty(t, orders.Orders)
	require.Equal(t, order.ID, orders.Orders[0].ID)
}

func TestCheckoutOnEmptyCart(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/app/checkout", token, nil)
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestLogoutKillsToken(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/auth/logout", token, nil)
	require.Equal(t, http.StatusNoContent, w.Code)

	w = doJSON(t, r, http.MethodGet, "/v1/app/cart", token, nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAssistantSearchFallsBack(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	w := doJSON(t, r, http.MethodPost, "/v1/assistant/search", token, gin.H{"query": "gifts"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp searchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "I encountered an error trying to find intelligent recommendations.", resp.Text)
}

func TestNoticesDrainOnce(t *testing.T) {
	r := newTestRouter(t)
	token := login(t, r)

	var resp struct {
		Notices []noticeJSON `json:"notices"`
	}
	w := doJSON(t, r, http.MethodGet, "/v1/app/notices", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Notices, 1)
	require.Equal(t, "Welcome back, Alex!", resp.Notices[0].Message)

	w = doJSON(t, r, http.MethodGet, "/v1/app/notices", token, nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Empty(t, resp.Notices)
}
