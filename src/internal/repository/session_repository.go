package repository

import "errors"

type SessionRepository struct {
	Store *Store
}

func NewSessionRepository(store *Store) *SessionRepository {
	return &SessionRepository{Store: store}
}

// GetAuth reads the authenticated flag, defaulting to false when absent.
func (r *SessionRepository) GetAuth() (bool, error) {
	var authenticated bool
	if err := r.Store.Get(KeyAuth, &authenticated); err != nil {
		if errors.Is(err, ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return authenticated, nil
}

func (r *SessionRepository) SetAuth(authenticated bool) error {
	return r.Store.Set(KeyAuth, authenticated)
}
