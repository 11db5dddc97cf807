package usecase

import (
	"fmt"
	"time"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"
	"wallet-service/src/internal/model/converter"
	"wallet-service/src/internal/repository"
	httpError "wallet-service/src/pkg/http-error"
	"wallet-service/src/pkg/log"
	"wallet-service/src/pkg/metrics"
	"wallet-service/src/pkg/utils"

	"github.com/google/uuid"
)

// DefaultMaxNotifications caps stored notifications; the oldest entries are
// evicted once the list overflows.
const DefaultMaxNotifications = 100

type NotificationUseCase struct {
	Log           log.Log
	Notifications *repository.NotificationRepository
	Metrics       *metrics.Collector
	MaxStored     int
}

func NewNotificationUseCase(
	logger log.Log,
	notificationRepository *repository.NotificationRepository,
	collector *metrics.Collector,
	maxStored int,
) *NotificationUseCase {
	if maxStored <= 0 {
		maxStored = DefaultMaxNotifications
	}
	return &NotificationUseCase{
		Log:           logger,
		Notifications: notificationRepository,
		Metrics:       collector,
		MaxStored:     maxStored,
	}
}

// Add prepends a new notification and persists the whole list. Overflow is
// trimmed from the tail, so the newest MaxStored entries survive.
func (c *NotificationUseCase) Add(title, message string, ntype entity.NotificationType, category entity.NotificationCategory) error {
	notifications, err := c.Notifications.GetNotifications()
	if err != nil {
		return err
	}

	entry := entity.NotificationData{
		ID:        uuid.NewString(),
		Title:     title,
		Message:   message,
		Type:      ntype,
		Category:  category,
		Timestamp: time.Now().Format(time.RFC3339),
		Read:      false,
	}

	notifications = append([]entity.NotificationData{entry}, notifications...)
	if len(notifications) > c.MaxStored {
		notifications = notifications[:c.MaxStored]
	}

	if err := c.Notifications.SetNotifications(notifications); err != nil {
		return err
	}
	c.Metrics.SetNotificationCount(len(notifications))
	return nil
}

func (c *NotificationUseCase) List() utils.Result {
	var result utils.Result

	notifications, err := c.Notifications.GetNotifications()
	if err != nil {
		c.Log.Error("NotificationUseCase.List", err.Error(), "storage", "")
		errObj := httpError.NewInternalServerError()
		errObj.Message = fmt.Sprintf("failed to load notifications: %v", err)
		result.Error = errObj
		return result
	}

	responses := make([]model.NotificationResponse, 0, len(notifications))
	unread := 0
	for i := range notifications {
		if !notifications[i].Read {
			unread++
		}
		responses = append(responses, *converter.NotificationToResponse(&notifications[i]))
	}

	result.Data = &model.NotificationListResponse{
		Notifications: responses,
		UnreadCount:   unread,
	}
	return result
}

func (c *NotificationUseCase) MarkRead(id string) utils.Result {
	var result utils.Result

	notifications, err := c.Notifications.GetNotifications()
	if err != nil {
		result.Error = storageError(err)
		return result
	}

	found := false
	for i := range notifications {
		if notifications[i].ID == id {
			notifications[i].Read = true
			found = true
			break
		}
	}
	if !found {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("notification %s not found", id)
		result.Error = errObj
		return result
	}

	if err := c.Notifications.SetNotifications(notifications); err != nil {
		result.Error = storageError(err)
		return result
	}
	return result
}

func (c *NotificationUseCase) MarkAllRead() utils.Result {
	var result utils.Result

	notifications, err := c.Notifications.GetNotifications()
	if err != nil {
		result.Error = storageError(err)
		return result
	}
	for i := range notifications {
		notifications[i].Read = true
	}
	if err := c.Notifications.SetNotifications(notifications); err != nil {
		result.Error = storageError(err)
		return result
	}
	return result
}

func (c *NotificationUseCase) Delete(id string) utils.Result {
	var result utils.Result

	notifications, err := c.Notifications.GetNotifications()
	if err != nil {
		result.Error = storageError(err)
		return result
	}

	remaining := notifications[:0]
	found := false
	for _, n := range notifications {
		if n.ID == id {
			found = true
			continue
		}
		remaining = append(remaining, n)
	}
	if !found {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("notification %s not found", id)
		result.Error = errObj
		return result
	}

	if err := c.Notifications.SetNotifications(remaining); err != nil {
		result.Error = storageError(err)
		return result
	}
	c.Metrics.SetNotificationCount(len(remaining))
	return result
}

func (c *NotificationUseCase) ClearAll() utils.Result {
	var result utils.Result

	if err := c.Notifications.SetNotifications([]entity.NotificationData{}); err != nil {
		result.Error = storageError(err)
		return result
	}
	c.Metrics.SetNotificationCount(0)
	return result
}

func storageError(err error) *httpError.CommonError {
	errObj := httpError.NewInternalServerError()
	errObj.Message = err.Error()
	return errObj
}
