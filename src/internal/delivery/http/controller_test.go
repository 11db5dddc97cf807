package http_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"wallet-service/src/internal/config"
	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	App      *fiber.App
	Store    *repository.Store
	Sessions *repository.SessionRepository
	Wallets  *repository.WalletRepository
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	store, err := repository.NewStore(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	v := viper.New()
	v.SetDefault("app.name", "WALLET_SERVICE_TEST")
	v.SetDefault("notifications.max", 100)

	app := config.NewFiber(v)
	config.Bootstrap(&config.BootstrapConfig{
		Store:    store,
		App:      app,
		Log:      log.Log{},
		Validate: validator.New(),
		Config:   v,
		Metrics:  metrics.NewCollector(),
	})

	return &testServer{
		App:      app,
		Store:    store,
		Sessions: repository.NewSessionRepository(store),
		Wallets:  repository.NewWalletRepository(store),
	}
}

func (s *testServer) login(t *testing.T) {
	t.Helper()
	require.NoError(t, s.Sessions.SetAuth(true))
}

func doJSON(t *testing.T, app *fiber.App, method, target, body string) (int, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")

	res, err := app.Test(req)
	require.NoError(t, err)
	defer res.Body.Close()

	payload := map[string]interface{}{}
	require.NoError(t, json.NewDecoder(res.Body).Decode(&payload))
	return res.StatusCode, payload
}

func TestWalletRoutes_RequireAuth(t *testing.T) {
	server := newTestServer(t)

	status, payload := doJSON(t, server.App, fiber.MethodGet, "/wallet/v1", "")
	assert.Equal(t, fiber.StatusUnauthorized, status)
	assert.Equal(t, false, payload["success"])
}

func TestWithdraw_RejectsAmountBelowMinimum(t *testing.T) {
	server := newTestServer(t)
	server.login(t)
	require.NoError(t, server.Wallets.SetWallet(&entity.WalletData{
		Balance:      1000,
		Transactions: []entity.Transaction{},
	}))

	status, payload := doJSON(t, server.App, fiber.MethodPost, "/wallet/v1/withdrawals",
		`{"amount":50,"bank":"BDO","account_name":"A","account_number":"123"}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Contains(t, payload["message"], "minimum withdrawal")

	wallet, err := server.Wallets.GetWallet()
	require.NoError(t, err)
	assert.Equal(t, 1000.0, wallet.Balance)
	assert.Empty(t, wallet.Transactions)
}

func TestWithdraw_AcceptsMinimumAmount(t *testing.T) {
	server := newTestServer(t)
	server.login(t)
	require.NoError(t, server.Wallets.SetWallet(&entity.WalletData{
		Balance:      1000,
		Transactions: []entity.Transaction{},
	}))

	status, _ := doJSON(t, server.App, fiber.MethodPost, "/wallet/v1/withdrawals",
		`{"amount":100,"bank":"BDO","account_name":"A","account_number":"123"}`)
	assert.Equal(t, fiber.StatusOK, status)

	wallet, err := server.Wallets.GetWallet()
	require.NoError(t, err)
	assert.Equal(t, 900.0, wallet.Balance)
	require.Len(t, wallet.Transactions, 1)
}

func TestGetTransactions_ReturnsSeededHistory(t *testing.T) {
	server := newTestServer(t)
	server.login(t)

	status, payload := doJSON(t, server.App, fiber.MethodGet, "/wallet/v1/transactions", "")
	assert.Equal(t, fiber.StatusOK, status)

	data, ok := payload["data"].([]interface{})
	require.True(t, ok)
	// Bootstrap seeds the sample history.
	assert.Len(t, data, 5)
}

func TestUpdateTransaction_RejectsEmptyUpdate(t *testing.T) {
	server := newTestServer(t)
	server.login(t)

	status, payload := doJSON(t, server.App, fiber.MethodPatch, "/admin/v1/transactions/wd001", `{}`)
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, false, payload["success"])
}
