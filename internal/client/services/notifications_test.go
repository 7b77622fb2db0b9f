package services

import (
	"context"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/api"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationService_List(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.EndpointNotifications, r.URL.Path)
		assert.Equal(t, "2", r.URL.Query().Get("page"))
		respondJSON(t, w, http.StatusOK, models.NotificationPage{
			Notifications: []models.Notification{{ID: "n1", Type: "like", FromUserName: "bob"}},
			UnreadCount:   1,
			Page:          2,
		})
	}))

	page, err := e.notifications.List(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, page.Notifications, 1)
	assert.Equal(t, "bob", page.Notifications[0].FromUserName)
	assert.Equal(t, 1, page.UnreadCount)
}

func TestNotificationService_MarkRead_DropsCachedInbox(t *testing.T) {
	var listFetches atomic.Int32
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case api.EndpointNotifications:
			listFetches.Add(1)
			respondJSON(t, w, http.StatusOK, models.NotificationPage{UnreadCount: 3})
		case api.EndpointNotificationsMarkRead:
			require.Equal(t, http.MethodPost, r.Method)
			respondJSON(t, w, http.StatusOK, map[string]bool{"ok": true})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	_, err := e.notifications.List(context.Background(), 1)
	require.NoError(t, err)
	_, err = e.notifications.List(context.Background(), 1)
	require.NoError(t, err)
	require.Equal(t, int32(1), listFetches.Load(), "second read should be served from cache")

	require.NoError(t, e.notifications.MarkRead(context.Background()))

	_, err = e.notifications.List(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, int32(2), listFetches.Load(), "marking read must drop the cached inbox")
}

func TestNotificationService_SettingsRoundTrip(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.EndpointNotificationsSettings, r.URL.Path)
		switch r.Method {
		case http.MethodGet:
			respondJSON(t, w, http.StatusOK, models.NotificationSettings{Likes: true, Follows: true})
		case http.MethodPut:
			var s models.NotificationSettings
			require.NoError(t, decodeBody(r, &s))
			assert.False(t, s.Likes)
			respondJSON(t, w, http.StatusOK, map[string]bool{"ok": true})
		default:
			t.Errorf("unexpected method %s", r.Method)
		}
	}))

	s, err := e.notifications.Settings(context.Background())
	require.NoError(t, err)
	assert.True(t, s.Likes)

	require.NoError(t, e.notifications.UpdateSettings(context.Background(),
		models.NotificationSettings{Likes: false, Comments: true, Follows: true}))
}
