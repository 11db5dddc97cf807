package usecase

import (
	"time"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/repository"
	"wallet-service/src/pkg/log"
)

// FallbackTradingID is the login code accepted before any user record
// exists.
const FallbackTradingID = "INVESTOR001"

type SeedUseCase struct {
	Log     log.Log
	Users   *repository.UserRepository
	Wallets *repository.WalletRepository
}

func NewSeedUseCase(
	logger log.Log,
	userRepository *repository.UserRepository,
	walletRepository *repository.WalletRepository,
) *SeedUseCase {
	return &SeedUseCase{
		Log:     logger,
		Users:   userRepository,
		Wallets: walletRepository,
	}
}

// DefaultUser is the canned profile created on first login or bootstrap.
func DefaultUser() *entity.User {
	return &entity.User{
		Name:      "Celberto Gualin Zamora",
		Country:   "Philippines",
		Mobile:    "+639468639470",
		Email:     "celbrtozamora@gmail.com",
		TradingID: FallbackTradingID,
		LinkedAccount: entity.LinkedAccount{
			Type:          "Maya Wallet",
			AccountName:   "Celberto Gualin Zamora",
			AccountNumber: "09468639470",
		},
	}
}

// InitializeIfAbsent seeds the default user and wallet records. Each record
// is checked independently and only created when missing, so calling this on
// every start is safe and never overwrites intervening edits.
func (c *SeedUseCase) InitializeIfAbsent() error {
	user, err := c.Users.GetUser()
	if err != nil {
		return err
	}
	if user == nil {
		if err := c.Users.SetUser(DefaultUser()); err != nil {
			return err
		}
		c.Log.Info("SeedUseCase.InitializeIfAbsent", "default user created", "seed", "")
	}

	if !c.Wallets.HasWallet() {
		if err := c.Wallets.SetWallet(sampleWallet()); err != nil {
			return err
		}
		c.Log.Info("SeedUseCase.InitializeIfAbsent", "default wallet created", "seed", "")
	}

	return nil
}

func sampleWallet() *entity.WalletData {
	now := time.Now()
	dayAgo := func(days int) string {
		return now.Add(-time.Duration(days) * 24 * time.Hour).Format(time.RFC3339)
	}

	return &entity.WalletData{
		Balance: repository.DefaultBalance,
		Transactions: []entity.Transaction{
			{
				ID:              "wd001",
				Type:            entity.TypeWithdrawal,
				Amount:          5000,
				Date:            dayAgo(1),
				Status:          entity.StatusPending,
				Description:     "Withdrawal to Maya Wallet - Pending Review",
				AccountName:     "Celberto Gualin Zamora",
				AccountNumber:   "09468639470",
				ReferenceNumber: "WD001-2024",
			},
			{
				ID:              "wd002",
				Type:            entity.TypeWithdrawal,
				Amount:          3000,
				Date:            dayAgo(2),
				Status:          entity.StatusProcessing,
				Description:     "Withdrawal to Maya Wallet - In Progress",
				AccountName:     "Celberto Gualin Zamora",
				AccountNumber:   "09468639470",
				ReferenceNumber: "WD002-2024",
			},
			{
				ID:              "wd003",
				Type:            entity.TypeWithdrawal,
				Amount:          2000,
				Date:            dayAgo(3),
				Status:          entity.StatusCompleted,
				Description:     "Withdrawal to Maya Wallet - Completed Successfully",
				AccountName:     "Celberto Gualin Zamora",
				AccountNumber:   "09468639470",
				ReferenceNumber: "WD003-2024",
			},
			{
				ID:              "dp001",
				Type:            entity.TypeDeposit,
				Amount:          50000,
				Date:            dayAgo(7),
				Status:          entity.StatusCompleted,
				Description:     "Initial Trading Capital Deposit",
				ReferenceNumber: "DP001-2024",
			},
			{
				ID:              "dp002",
				Type:            entity.TypeDeposit,
				Amount:          60000,
				Date:            dayAgo(14),
				Status:          entity.StatusCompleted,
				Description:     "Trading Account Top-up",
				ReferenceNumber: "DP002-2024",
			},
		},
	}
}
