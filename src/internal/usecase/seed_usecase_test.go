package usecase

import (
	"testing"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitializeIfAbsent_SeedsDefaults(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.Seed.InitializeIfAbsent())

	user, err := env.Users.GetUser()
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, FallbackTradingID, user.TradingID)
	assert.Equal(t, "Maya Wallet", user.LinkedAccount.Type)

	require.True(t, env.Wallets.HasWallet())
	wallet, err := env.Wallets.GetWallet()
	require.NoError(t, err)
	assert.Equal(t, repository.DefaultBalance, wallet.Balance)
	require.Len(t, wallet.Transactions, 5)

	withdrawals := 0
	for _, txn := range wallet.Transactions {
		if txn.Type == entity.TypeWithdrawal {
			withdrawals++
		}
	}
	assert.Equal(t, 3, withdrawals)
}

func TestInitializeIfAbsent_Idempotent(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.Seed.InitializeIfAbsent())

	first, err := env.Wallets.GetWallet()
	require.NoError(t, err)

	require.NoError(t, env.Seed.InitializeIfAbsent())

	second, err := env.Wallets.GetWallet()
	require.NoError(t, err)
	assert.Equal(t, first.Balance, second.Balance)
	assert.Equal(t, first.Transactions, second.Transactions)
}

func TestInitializeIfAbsent_NeverOverwritesEdits(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.Seed.InitializeIfAbsent())

	user, err := env.Users.GetUser()
	require.NoError(t, err)
	user.TradingID = "CUSTOM99"
	require.NoError(t, env.Users.SetUser(user))

	wallet, err := env.Wallets.GetWallet()
	require.NoError(t, err)
	wallet.Balance = 12345
	require.NoError(t, env.Wallets.SetWallet(wallet))

	require.NoError(t, env.Seed.InitializeIfAbsent())

	user, err = env.Users.GetUser()
	require.NoError(t, err)
	assert.Equal(t, "CUSTOM99", user.TradingID)

	wallet, err = env.Wallets.GetWallet()
	require.NoError(t, err)
	assert.Equal(t, 12345.0, wallet.Balance)
}

func TestInitializeIfAbsent_EmptyWalletStillCountsAsPresent(t *testing.T) {
	env := newTestEnv(t)
	// A stored wallet with zero content must not be re-seeded; presence is
	// judged by slot existence, not by content.
	seedWallet(t, env, &entity.WalletData{Balance: 0, Transactions: []entity.Transaction{}})

	require.NoError(t, env.Seed.InitializeIfAbsent())

	wallet, err := env.Wallets.GetWallet()
	require.NoError(t, err)
	assert.Equal(t, 0.0, wallet.Balance)
	assert.Empty(t, wallet.Transactions)
}
