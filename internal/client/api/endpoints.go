package api

// Endpoint catalog, centralized for easy maintenance. Paths are relative to
// the configured base URL.

// Auth endpoints.
const (
	EndpointAuthRegister     = "/auth/register"
	EndpointAuthLogin        = "/auth/login"
	EndpointAuthVerifyToken  = "/auth/verifyToken"
	EndpointAuthRefreshToken = "/auth/refreshToken"
)

// User endpoints.
const (
	EndpointUserProfile   = "/user/profile"
	EndpointUserUpdate    = "/user/update"
	EndpointUserFollowers = "/user/followers"
	EndpointUserFollowing = "/user/following"
	EndpointUserSearch    = "/user/search"
)

func EndpointUserFollow(userID string) string   { return "/user/" + userID + "/follow" }
func EndpointUserUnfollow(userID string) string { return "/user/" + userID + "/unfollow" }

// Video endpoints.
const (
	EndpointVideoUpload          = "/video/upload"
	EndpointVideoUserVideos      = "/video/user"
	EndpointVideoRecommendations = "/video/recommend"
	EndpointVideoTrending        = "/video/trending"
	EndpointVideoSearch          = "/video/search"
)

func EndpointVideoUserVideosByID(userID string) string { return "/video/user/" + userID }
func EndpointVideoView(videoID string) string          { return "/video/view/" + videoID }
func EndpointVideoLike(videoID string) string          { return "/video/like/" + videoID }
func EndpointVideoDislike(videoID string) string       { return "/video/dislike/" + videoID }
func EndpointVideoComments(videoID string) string      { return "/video/comment/" + videoID }

// Feed endpoints.
const (
	EndpointFeedHome      = "/feed/home"
	EndpointFeedForYou    = "/feed/for-you"
	EndpointFeedFollowing = "/feed/following"
)

// Notification endpoints.
const (
	EndpointNotifications         = "/notifications"
	EndpointNotificationsMarkRead = "/notifications/mark-read"
	EndpointNotificationsSettings = "/notifications/settings"
)
