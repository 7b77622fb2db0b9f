package models

// User is the profile record returned by the backend and cached locally
// for offline display.
type User struct {
	ID             string `json:"id"`
	UserName       string `json:"userName"`
	DisplayName    string `json:"displayName"`
	Email          string `json:"email"`
	ImageURL       string `json:"imageUrl"`
	FollowersCount int    `json:"followersCount"`
	FollowingCount int    `json:"followingCount"`
	VideoCount     int    `json:"videoCount"`
	IsFollowing    bool   `json:"isFollowing"`
}

// UserPage is a paged list of users (followers, following, search results).
type UserPage struct {
	Users      []User `json:"users"`
	Page       int    `json:"page"`
	TotalPages int    `json:"totalPages"`
	Total      int    `json:"total"`
}
