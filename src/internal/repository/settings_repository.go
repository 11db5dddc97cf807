package repository

import (
	"errors"

	"wallet-service/src/internal/entity"
)

// DefaultWithdrawalInstructions is applied to new withdrawals until the
// admin configures their own text.
const DefaultWithdrawalInstructions = "Please wait while we process your withdrawal request. You will receive updates via notifications."

type SettingsRepository struct {
	Store *Store
}

func NewSettingsRepository(store *Store) *SettingsRepository {
	return &SettingsRepository{Store: store}
}

// GetWithdrawalDefaults falls back to a pending status with the canned
// instruction text when nothing has been configured.
func (r *SettingsRepository) GetWithdrawalDefaults() (*entity.WithdrawalDefaults, error) {
	var defaults entity.WithdrawalDefaults
	if err := r.Store.Get(KeyWithdrawalDefaults, &defaults); err != nil {
		if errors.Is(err, ErrNotFound) {
			return &entity.WithdrawalDefaults{
				Status:       entity.StatusPending,
				Instructions: DefaultWithdrawalInstructions,
			}, nil
		}
		return nil, err
	}
	if defaults.Status == "" {
		defaults.Status = entity.StatusPending
	}
	return &defaults, nil
}

func (r *SettingsRepository) SetWithdrawalDefaults(defaults *entity.WithdrawalDefaults) error {
	return r.Store.Set(KeyWithdrawalDefaults, defaults)
}
