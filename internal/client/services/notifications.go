package services

import (
	"context"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/api"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/models"
)

// NotificationService defines the notification inbox operations.
type NotificationService interface {
	List(ctx context.Context, page int) (*models.NotificationPage, error)
	MarkRead(ctx context.Context) error
	Settings(ctx context.Context) (*models.NotificationSettings, error)
	UpdateSettings(ctx context.Context, s models.NotificationSettings) error
}

type notificationService struct {
	api *api.Client
}

// NewNotificationService constructs a NotificationService over the given
// pipeline.
func NewNotificationService(client *api.Client) NotificationService {
	return &notificationService{api: client}
}

// List returns one page of the inbox, newest first.
func (n *notificationService) List(ctx context.Context, page int) (*models.NotificationPage, error) {
	var out models.NotificationPage
	if err := n.api.Get(ctx, api.EndpointNotifications, pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// MarkRead marks the whole inbox read and drops cached inbox pages so the
// unread count reflects it on the next fetch.
func (n *notificationService) MarkRead(ctx context.Context) error {
	if err := n.api.Post(ctx, api.EndpointNotificationsMarkRead, nil, nil); err != nil {
		return err
	}
	n.api.InvalidateCachePattern(api.EndpointNotifications)
	return nil
}

// Settings returns the current notification preferences.
func (n *notificationService) Settings(ctx context.Context) (*models.NotificationSettings, error) {
	var out models.NotificationSettings
	if err := n.api.Get(ctx, api.EndpointNotificationsSettings, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateSettings replaces the notification preferences.
func (n *notificationService) UpdateSettings(ctx context.Context, s models.NotificationSettings) error {
	if err := n.api.Put(ctx, api.EndpointNotificationsSettings, s, nil); err != nil {
		return err
	}
	n.api.InvalidateCachePattern(api.EndpointNotificationsSettings)
	return nil
}
