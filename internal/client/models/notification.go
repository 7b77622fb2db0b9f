package models

import "time"

// Notification is one inbox entry (a like, comment, or new follower).
type Notification struct {
	ID           string    `json:"id"`
	Type         string    `json:"type"`
	Message      string    `json:"message"`
	FromUserID   string    `json:"fromUserId"`
	FromUserName string    `json:"fromUserName"`
	VideoID      string    `json:"videoId"`
	Read         bool      `json:"read"`
	CreatedAt    time.Time `json:"createdAt"`
}

// NotificationPage is a paged list of notifications.
type NotificationPage struct {
	Notifications []Notification `json:"notifications"`
	UnreadCount   int            `json:"unreadCount"`
	Page          int            `json:"page"`
	TotalPages    int            `json:"totalPages"`
	Total         int            `json:"total"`
}

// NotificationSettings controls which events generate notifications.
type NotificationSettings struct {
	Likes    bool `json:"likes"`
	Comments bool `json:"comments"`
	Follows  bool `json:"follows"`
}
