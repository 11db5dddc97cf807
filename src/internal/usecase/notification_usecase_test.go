package usecase

import (
	"fmt"
	"testing"

	"wallet-service/src/internal/entity"
	"wallet-service/src/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationAdd_PrependsNewestFirst(t *testing.T) {
	env := newTestEnv(t)

	require.NoError(t, env.Notifications.Add("first", "m", entity.NotifyInfo, entity.CategorySystem))
	require.NoError(t, env.Notifications.Add("second", "m", entity.NotifyInfo, entity.CategorySystem))

	notifications, err := env.NotifRepo.GetNotifications()
	require.NoError(t, err)
	require.Len(t, notifications, 2)
	assert.Equal(t, "second", notifications[0].Title)
	assert.Equal(t, "first", notifications[1].Title)
	assert.False(t, notifications[0].Read)
	assert.NotEmpty(t, notifications[0].ID)
}

func TestNotificationAdd_CapEvictsOldest(t *testing.T) {
	env := newTestEnv(t)
	env.Notifications.MaxStored = 3

	for i := 1; i <= 5; i++ {
		require.NoError(t, env.Notifications.Add(fmt.Sprintf("n%d", i), "m", entity.NotifyInfo, entity.CategorySystem))
	}

	notifications, err := env.NotifRepo.GetNotifications()
	require.NoError(t, err)
	require.Len(t, notifications, 3)
	assert.Equal(t, "n5", notifications[0].Title)
	assert.Equal(t, "n3", notifications[2].Title)
}

func TestNotificationMarkRead(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.Notifications.Add("a", "m", entity.NotifyInfo, entity.CategorySystem))

	notifications, err := env.NotifRepo.GetNotifications()
	require.NoError(t, err)
	id := notifications[0].ID

	result := env.Notifications.MarkRead(id)
	require.NoError(t, result.Error)

	notifications, err = env.NotifRepo.GetNotifications()
	require.NoError(t, err)
	assert.True(t, notifications[0].Read)

	result = env.Notifications.MarkRead("missing")
	require.Error(t, result.Error)
}

func TestNotificationMarkAllRead(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.Notifications.Add("a", "m", entity.NotifyInfo, entity.CategorySystem))
	require.NoError(t, env.Notifications.Add("b", "m", entity.NotifyWarning, entity.CategorySecurity))

	result := env.Notifications.MarkAllRead()
	require.NoError(t, result.Error)

	listResult := env.Notifications.List()
	require.NoError(t, listResult.Error)
	list, ok := listResult.Data.(*model.NotificationListResponse)
	require.True(t, ok)
	assert.Equal(t, 0, list.UnreadCount)
	for _, n := range list.Notifications {
		assert.True(t, n.Read)
	}
}

func TestNotificationDelete(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.Notifications.Add("a", "m", entity.NotifyInfo, entity.CategorySystem))
	require.NoError(t, env.Notifications.Add("b", "m", entity.NotifyInfo, entity.CategorySystem))

	notifications, err := env.NotifRepo.GetNotifications()
	require.NoError(t, err)
	id := notifications[0].ID

	result := env.Notifications.Delete(id)
	require.NoError(t, result.Error)

	notifications, err = env.NotifRepo.GetNotifications()
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	assert.Equal(t, "a", notifications[0].Title)

	result = env.Notifications.Delete(id)
	require.Error(t, result.Error)
}

func TestNotificationClearAll(t *testing.T) {
	env := newTestEnv(t)
	require.NoError(t, env.Notifications.Add("a", "m", entity.NotifyInfo, entity.CategorySystem))

	result := env.Notifications.ClearAll()
	require.NoError(t, result.Error)

	notifications, err := env.NotifRepo.GetNotifications()
	require.NoError(t, err)
	assert.Empty(t, notifications)
}
