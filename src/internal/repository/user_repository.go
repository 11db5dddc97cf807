package repository

import (
	"errors"

	"wallet-service/src/internal/entity"
)

type UserRepository struct {
	Store *Store
}

func NewUserRepository(store *Store) *UserRepository {
	return &UserRepository{Store: store}
}

// GetUser returns nil without error when no user record exists yet.
func (r *UserRepository) GetUser() (*entity.User, error) {
	var user entity.User
	if err := r.Store.Get(KeyUser, &user); err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) SetUser(user *entity.User) error {
	return r.Store.Set(KeyUser, user)
}
