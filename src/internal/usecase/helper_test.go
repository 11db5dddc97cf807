package usecase

import (
	"testing"

	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/metrics"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	Store         *repository.Store
	Sessions      *repository.SessionRepository
	Users         *repository.UserRepository
	Wallets       *repository.WalletRepository
	NotifRepo     *repository.NotificationRepository
	Settings      *repository.SettingsRepository
	Notifications *NotificationUseCase
	Wallet        *WalletUseCase
	Auth          *AuthUseCase
	Admin         *AdminUseCase
	Seed          *SeedUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := repository.NewStore(afero.NewMemMapFs(), "data")
	require.NoError(t, err)

	logger := log.Log{}
	validate := validator.New()
	collector := metrics.NewCollector()

	sessions := repository.NewSessionRepository(store)
	users := repository.NewUserRepository(store)
	wallets := repository.NewWalletRepository(store)
	notifRepo := repository.NewNotificationRepository(store)
	settings := repository.NewSettingsRepository(store)

	notifications := NewNotificationUseCase(logger, notifRepo, collector, 0)
	seed := NewSeedUseCase(logger, users, wallets)
	wallet := NewWalletUseCase(logger, validate, wallets, settings, notifications, collector)
	auth := NewAuthUseCase(logger, validate, sessions, users, seed, notifications, collector)
	admin := NewAdminUseCase(logger, validate, store, users, wallets, settings, notifications)

	return &testEnv{
		Store:         store,
		Sessions:      sessions,
		Users:         users,
		Wallets:       wallets,
		NotifRepo:     notifRepo,
		Settings:      settings,
		Notifications: notifications,
		Wallet:        wallet,
		Auth:          auth,
		Admin:         admin,
		Seed:          seed,
	}
}
