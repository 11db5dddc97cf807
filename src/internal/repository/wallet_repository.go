package repository

import (
	"errors"
	"time"

	"wallet-service/src/internal/entity"
)

// DefaultBalance is the balance a brand-new wallet starts with.
const DefaultBalance = 98880.00

type WalletRepository struct {
	Store *Store
}

func NewWalletRepository(store *Store) *WalletRepository {
	return &WalletRepository{Store: store}
}

// GetWallet returns a fresh default wallet when no record exists. Use
// HasWallet to distinguish an absent record from a stored one.
func (r *WalletRepository) GetWallet() (*entity.WalletData, error) {
	var wallet entity.WalletData
	if err := r.Store.Get(KeyWallet, &wallet); err != nil {
		if errors.Is(err, ErrNotFound) {
			return &entity.WalletData{
				Balance:      DefaultBalance,
				Transactions: []entity.Transaction{},
				LastUpdated:  time.Now().Format(time.RFC3339),
			}, nil
		}
		return nil, err
	}
	if wallet.Transactions == nil {
		wallet.Transactions = []entity.Transaction{}
	}
	return &wallet, nil
}

func (r *WalletRepository) SetWallet(wallet *entity.WalletData) error {
	wallet.LastUpdated = time.Now().Format(time.RFC3339)
	return r.Store.Set(KeyWallet, wallet)
}

// HasWallet checks slot existence, not content.
func (r *WalletRepository) HasWallet() bool {
	return r.Store.Exists(KeyWallet)
}
