package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"stablecoin-payment-rail/config"
	httpHandler "stablecoin-payment-rail/internal/adapter/http/handler"
	redisStorage "stablecoin-payment-rail/internal/adapter/storage/redis"
	"stablecoin-payment-rail/internal/chains"
	"stablecoin-payment-rail/internal/core/ports"
	"stablecoin-payment-rail/internal/service"
	"stablecoin-payment-rail/pkg/logger"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testApp builds a full application stack against a fake rail and in-memory
// storage, with miniredis backing the link cache. This exercises the real
// HTTP layer, middleware, handlers, and services end-to-end.

type testApp struct {
	server *httptest.Server
	redis  *miniredis.Miniredis
	rail   *fakeRail
	repo   *inMemoryMerchantRepo
}

func newTestApp(t *testing.T, failChains ...string) *testApp {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	rdb := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})

	railClient := newFakeRail(failChains...)
	merchantRepo := newInMemoryMerchantRepo()
	linkCache := redisStorage.NewLinkCache(rdb)

	log := logger.New("debug", false)
	registry := chains.NewRegistry()

	provisioner := service.NewWalletProvisioner(railClient, config.ProvisionerConfig{
		PrimaryChain: chains.DefaultChainKey,
		SettleDelay:  0,
		Faucet:       true,
	}, log)
	onboardingSvc, err := service.NewOnboardingService(railClient, provisioner, merchantRepo, registry, chains.DefaultChainKey, log)
	require.NoError(t, err)
	paymentLinkSvc := service.NewPaymentLinkService(railClient, registry, linkCache, log)

	router := httpHandler.SetupRouter(httpHandler.RouterDeps{
		OnboardingSvc:  onboardingSvc,
		PaymentLinkSvc: paymentLinkSvc,
		MerchantRepo:   merchantRepo,
		LinkCache:      linkCache,
		Logger:         log,
	})

	server := httptest.NewServer(router)

	return &testApp{
		server: server,
		redis:  mr,
		rail:   railClient,
		repo:   merchantRepo,
	}
}

func (a *testApp) close() {
	a.server.Close()
	a.redis.Close()
}

func (a *testApp) postJSON(t *testing.T, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)

	resp, err := http.Post(a.server.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

func (a *testApp) getJSON(t *testing.T, path string) (*http.Response, map[string]interface{}) {
	t.Helper()
	resp, err := http.Get(a.server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()

	var parsed map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&parsed))
	return resp, parsed
}

// --- Integration Tests ---

func TestIntegration_HealthCheck(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.getJSON(t, "/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", body["status"])
}

func TestIntegration_OnboardingAndPaymentFlow(t *testing.T) {
	app := newTestApp(t, "ARB_SEPOLIA")
	defer app.close()

	// Onboard a merchant while one secondary chain is down.
	resp, body := app.postJSON(t, "/api/v1/merchants", map[string]string{
		"merchant_name": "Acme  Cafe",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	data := body["data"].(map[string]interface{})
	assert.Equal(t, "mer1", data["merchant_id"])
	assert.Equal(t, "acme-cafe", data["slug"])
	merchantAddress := data["wallet_address"].(string)
	assert.NotEmpty(t, merchantAddress)

	paWalletSetID := data["payment_acceptance_wallet_set_id"].(string)
	assert.NotEmpty(t, paWalletSetID)
	assert.NotEqual(t, data["wallet_set_id"], paWalletSetID)

	chainsOut := data["chains"].(map[string]interface{})
	succeeded := chainsOut["succeeded"].([]interface{})
	assert.Len(t, succeeded, 6) // 7 registered chains, one down
	assert.Equal(t, "ETH_SEPOLIA", succeeded[0])
	failed := chainsOut["failed"].(map[string]interface{})
	require.Contains(t, failed, "ARB_SEPOLIA")
	assert.Contains(t, failed["ARB_SEPOLIA"], "unavailable")

	// Generate a payment link against the payment acceptance wallet set.
	resp, body = app.postJSON(t, "/api/v1/payment-links", map[string]string{
		"order_id":                         "ord-1",
		"payment_acceptance_wallet_set_id": paWalletSetID,
		"amount":                           "12.50",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	link := body["data"].(map[string]interface{})
	assert.Equal(t, "ord-1", link["order_id"])
	assert.Equal(t, "12.50", link["amount"])
	orderAddress := link["wallet_address"].(string)
	assert.NotEmpty(t, orderAddress)
	assert.NotEqual(t, merchantAddress, orderAddress, "order wallet is separate from the merchant wallet")
	assert.Contains(t, link["link"], "amount=12.50")
	assert.Equal(t, url.QueryEscape(link["link"].(string)), link["encoded_link"])

	// The issued link is served from cache by order id.
	resp, body = app.getJSON(t, "/api/v1/payment-links/ord-1")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	cached := body["data"].(map[string]interface{})
	assert.Equal(t, link["link"], cached["link"])
	assert.Equal(t, "12.50", cached["amount"])
}

func TestIntegration_DoubleOnboardingProducesDistinctMerchants(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.postJSON(t, "/api/v1/merchants", map[string]string{"merchant_name": "Acme Cafe"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	first := body["data"].(map[string]interface{})

	resp, body = app.postJSON(t, "/api/v1/merchants", map[string]string{"merchant_name": "Acme Cafe"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	second := body["data"].(map[string]interface{})

	// Same name is not deduplicated: each request gets its own id and
	// wallet sets.
	assert.Equal(t, "mer1", first["merchant_id"])
	assert.Equal(t, "mer2", second["merchant_id"])
	assert.NotEqual(t, first["wallet_set_id"], second["wallet_set_id"])
	assert.NotEqual(t, first["payment_acceptance_wallet_set_id"], second["payment_acceptance_wallet_set_id"])
}

func TestIntegration_MerchantReads(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, _ := app.postJSON(t, "/api/v1/merchants", map[string]string{"merchant_name": "Acme Cafe"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp, _ = app.postJSON(t, "/api/v1/merchants", map[string]string{"merchant_name": "Beta Bar"})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	resp, body := app.getJSON(t, "/api/v1/merchants")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, float64(2), data["total"])

	resp, body = app.getJSON(t, "/api/v1/merchants/mer2")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	merchant := body["data"].(map[string]interface{})
	assert.Equal(t, "beta-bar", merchant["slug"])

	resp, body = app.getJSON(t, "/api/v1/merchants/mer999")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PAY_404", body["error_code"])
}

func TestIntegration_OnboardingValidation(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.postJSON(t, "/api/v1/merchants", map[string]string{})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VAL_001", body["error_code"])

	// Whitespace-only name survives binding but fails slug normalization.
	resp, body = app.postJSON(t, "/api/v1/merchants", map[string]string{"merchant_name": "   "})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "VAL_001", body["error_code"])
}

func TestIntegration_PrimaryChainDownFailsOnboarding(t *testing.T) {
	app := newTestApp(t, "ETH_SEPOLIA")
	defer app.close()

	resp, body := app.postJSON(t, "/api/v1/merchants", map[string]string{"merchant_name": "Acme Cafe"})
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, "RAIL_001", body["error_code"])

	// Nothing was persisted.
	merchants, err := app.repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, merchants)
}

func TestIntegration_PaymentLinkUnknownChainUsesDefault(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, body := app.postJSON(t, "/api/v1/payment-links", map[string]string{
		"order_id":                         "ord-9",
		"payment_acceptance_wallet_set_id": "ws-ext",
		"amount":                           "5",
		"chain":                            "DOGE_MAINNET",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	link := body["data"].(map[string]interface{})
	assert.Contains(t, link["link"], "chain="+chains.DefaultChainKey)
}

func TestIntegration_CachedLinkExpires(t *testing.T) {
	app := newTestApp(t)
	defer app.close()

	resp, _ := app.postJSON(t, "/api/v1/payment-links", map[string]string{
		"order_id":                         "ord-2",
		"payment_acceptance_wallet_set_id": "ws-ext",
		"amount":                           "7",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	app.redis.FastForward(25 * time.Hour)

	resp, body := app.getJSON(t, "/api/v1/payment-links/ord-2")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "PAY_404", body["error_code"])
}

var _ ports.RailClient = (*fakeRail)(nil)
var _ ports.MerchantRepository = (*inMemoryMerchantRepo)(nil)
