package repository

import (
	"errors"

	"wallet-service/src/internal/entity"
)

type NotificationRepository struct {
	Store *Store
}

func NewNotificationRepository(store *Store) *NotificationRepository {
	return &NotificationRepository{Store: store}
}

// GetNotifications returns an empty list when the slot is absent. The
// stored list is newest first.
func (r *NotificationRepository) GetNotifications() ([]entity.NotificationData, error) {
	var notifications []entity.NotificationData
	if err := r.Store.Get(KeyNotifications, &notifications); err != nil {
		if errors.Is(err, ErrNotFound) {
			return []entity.NotificationData{}, nil
		}
		return nil, err
	}
	if notifications == nil {
		notifications = []entity.NotificationData{}
	}
	return notifications, nil
}

func (r *NotificationRepository) SetNotifications(notifications []entity.NotificationData) error {
	return r.Store.Set(KeyNotifications, notifications)
}
