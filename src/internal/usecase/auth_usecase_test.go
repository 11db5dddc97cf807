package usecase

import (
	"testing"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin_FallbackIDCaseInsensitive(t *testing.T) {
	for _, entered := range []string{"INVESTOR001", "investor001", "Investor001"} {
		env := newTestEnv(t)

		result := env.Auth.Login(&model.LoginRequest{TradingID: entered})
		require.NoError(t, result.Error, "expected %q to be accepted", entered)

		authenticated, err := env.Sessions.GetAuth()
		require.NoError(t, err)
		assert.True(t, authenticated)

		// First login bootstraps user and wallet records.
		user, err := env.Users.GetUser()
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.Equal(t, FallbackTradingID, user.TradingID)
		assert.True(t, env.Wallets.HasWallet())
	}
}

func TestLogin_StoredTradingIDOverridesFallback(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.Users.SetUser(&entity.User{Name: "A", TradingID: "TRADER42"}))

	result := env.Auth.Login(&model.LoginRequest{TradingID: "trader42"})
	require.NoError(t, result.Error)

	result = env.Auth.Login(&model.LoginRequest{TradingID: "INVESTOR001"})
	require.Error(t, result.Error)
}

func TestLogin_MismatchMutatesNothingExceptSecurityNotification(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.Users.SetUser(&entity.User{Name: "A", TradingID: "TRADER42"}))
	seedWallet(t, env, &entity.WalletData{Balance: 777, Transactions: []entity.Transaction{}})

	result := env.Auth.Login(&model.LoginRequest{TradingID: "WRONG"})
	require.Error(t, result.Error)

	authenticated, err := env.Sessions.GetAuth()
	require.NoError(t, err)
	assert.False(t, authenticated)

	user, err := env.Users.GetUser()
	require.NoError(t, err)
	assert.Equal(t, "TRADER42", user.TradingID)

	wallet, err := env.Wallets.GetWallet()
	require.NoError(t, err)
	assert.Equal(t, 777.0, wallet.Balance)

	notifications, err := env.NotifRepo.GetNotifications()
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "Failed Login Attempt", notifications[0].Title)
	assert.Equal(t, entity.NotifyWarning, notifications[0].Type)
	assert.Equal(t, entity.CategorySecurity, notifications[0].Category)
}

func TestLogin_MismatchWithoutUserRecordsNothing(t *testing.T) {
	env := newTestEnv(t)

	result := env.Auth.Login(&model.LoginRequest{TradingID: "WRONG"})
	require.Error(t, result.Error)

	user, err := env.Users.GetUser()
	require.NoError(t, err)
	assert.Nil(t, user)

	notifications, err := env.NotifRepo.GetNotifications()
	require.NoError(t, err)
	assert.Empty(t, notifications)
}

func TestLogin_RejectsBlankTradingID(t *testing.T) {
	env := newTestEnv(t)

	result := env.Auth.Login(&model.LoginRequest{TradingID: "   "})
	require.Error(t, result.Error)
}

func TestLogout_ClearsOnlyAuthFlag(t *testing.T) {
	env := newTestEnv(t)

	result := env.Auth.Login(&model.LoginRequest{TradingID: FallbackTradingID})
	require.NoError(t, result.Error)

	result = env.Auth.Logout()
	require.NoError(t, result.Error)

	authenticated, err := env.Auth.IsAuthenticated()
	require.NoError(t, err)
	assert.False(t, authenticated)

	user, err := env.Users.GetUser()
	require.NoError(t, err)
	assert.NotNil(t, user)
	assert.True(t, env.Wallets.HasWallet())
}
