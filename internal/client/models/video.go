package models

import "time"

// Video is a single feed item.
type Video struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	Caption       string    `json:"caption"`
	VideoURL      string    `json:"videoUrl"`
	ThumbnailURL  string    `json:"thumbnailUrl"`
	LikeCount     int       `json:"likeCount"`
	CommentCount  int       `json:"commentCount"`
	ViewCount     int       `json:"viewCount"`
	IsLiked       bool      `json:"isLiked"`
	CreatedAt     time.Time `json:"createdAt"`
}

// VideoPage is a paged list of videos.
type VideoPage struct {
	Videos     []Video `json:"videos"`
	Page       int     `json:"page"`
	TotalPages int     `json:"totalPages"`
	Total      int     `json:"total"`
}

// Comment is a single comment on a video.
type Comment struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"videoId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"createdAt"`
}

// CommentPage is a paged list of comments.
type CommentPage struct {
	Comments   []Comment `json:"comments"`
	Page       int       `json:"page"`
	TotalPages int       `json:"totalPages"`
	Total      int       `json:"total"`
}
