package services

import (
	"context"
	"strings"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/api"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/models"
)

// Feed selects one of the server-side feed rankings.
type Feed string

const (
	FeedHome      Feed = "home"
	FeedForYou    Feed = "for-you"
	FeedFollowing Feed = "following"
)

func (f Feed) endpoint() string {
	switch f {
	case FeedForYou:
		return api.EndpointFeedForYou
	case FeedFollowing:
		return api.EndpointFeedFollowing
	default:
		return api.EndpointFeedHome
	}
}

// VideoUpload is the input for publishing a new video.
type VideoUpload struct {
	Caption string
	Video   api.UploadFile
}

// VideoService defines feed, playback, and engagement operations.
type VideoService interface {
	Feed(ctx context.Context, feed Feed, page int) (*models.VideoPage, error)
	Trending(ctx context.Context, page int) (*models.VideoPage, error)
	Recommendations(ctx context.Context, page int) (*models.VideoPage, error)
	UserVideos(ctx context.Context, userID string, page int) (*models.VideoPage, error)
	Search(ctx context.Context, query string, page int) (*models.VideoPage, error)
	Upload(ctx context.Context, upload VideoUpload) (*models.Video, error)
	RegisterView(ctx context.Context, videoID string) error
	Like(ctx context.Context, videoID string) error
	Dislike(ctx context.Context, videoID string) error
	Comments(ctx context.Context, videoID string, page int) (*models.CommentPage, error)
	AddComment(ctx context.Context, videoID, text string) (*models.Comment, error)
}

type videoService struct {
	api *api.Client
}

// NewVideoService constructs a VideoService over the given pipeline.
func NewVideoService(client *api.Client) VideoService {
	return &videoService{api: client}
}

// Feed returns one page of the selected feed.
func (v *videoService) Feed(ctx context.Context, feed Feed, page int) (*models.VideoPage, error) {
	var out models.VideoPage
	if err := v.api.Get(ctx, feed.endpoint(), pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Trending returns one page of currently trending videos.
func (v *videoService) Trending(ctx context.Context, page int) (*models.VideoPage, error) {
	var out models.VideoPage
	if err := v.api.Get(ctx, api.EndpointVideoTrending, pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Recommendations returns one page of personalized recommendations.
func (v *videoService) Recommendations(ctx context.Context, page int) (*models.VideoPage, error) {
	var out models.VideoPage
	if err := v.api.Get(ctx, api.EndpointVideoRecommendations, pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// UserVideos lists the videos published by userID. An empty id means the
// signed-in user.
func (v *videoService) UserVideos(ctx context.Context, userID string, page int) (*models.VideoPage, error) {
	path := api.EndpointVideoUserVideos
	if userID != "" {
		path = api.EndpointVideoUserVideosByID(userID)
	}

	var out models.VideoPage
	if err := v.api.Get(ctx, path, pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Search finds videos by caption text. An empty query is rejected locally.
func (v *videoService) Search(ctx context.Context, query string, page int) (*models.VideoPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, api.NewValidationError("search query is required")
	}

	q := pageQuery(page)
	q.Set("q", query)

	var out models.VideoPage
	if err := v.api.Get(ctx, api.EndpointVideoSearch, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Upload publishes a new video as multipart and drops cached feed pages so
// the next fetch can include it.
func (v *videoService) Upload(ctx context.Context, upload VideoUpload) (*models.Video, error) {
	if len(upload.Video.Content) == 0 {
		return nil, api.NewValidationError("video content is required")
	}
	if upload.Video.Field == "" {
		upload.Video.Field = "video"
	}

	fields := map[string]string{}
	if upload.Caption != "" {
		fields["caption"] = upload.Caption
	}

	var out models.Video
	if err := v.api.Upload(ctx, api.EndpointVideoUpload, []api.UploadFile{upload.Video}, fields, &out); err != nil {
		return nil, err
	}
	v.api.InvalidateCachePattern("/feed/")
	v.api.InvalidateCachePattern("/video/")
	return &out, nil
}

// RegisterView records one playback of videoID. Best-effort from the UI's
// point of view, but errors are still returned for the caller to log.
func (v *videoService) RegisterView(ctx context.Context, videoID string) error {
	if videoID == "" {
		return api.NewValidationError("video id is required")
	}
	return v.api.Post(ctx, api.EndpointVideoView(videoID), nil, nil)
}

// Like marks videoID liked and drops stale cached copies of it.
func (v *videoService) Like(ctx context.Context, videoID string) error {
	if videoID == "" {
		return api.NewValidationError("video id is required")
	}
	if err := v.api.Post(ctx, api.EndpointVideoLike(videoID), nil, nil); err != nil {
		return err
	}
	v.api.InvalidateCachePattern(videoID)
	return nil
}

// Dislike removes a like from videoID.
func (v *videoService) Dislike(ctx context.Context, videoID string) error {
	if videoID == "" {
		return api.NewValidationError("video id is required")
	}
	if err := v.api.Post(ctx, api.EndpointVideoDislike(videoID), nil, nil); err != nil {
		return err
	}
	v.api.InvalidateCachePattern(videoID)
	return nil
}

// Comments returns one page of comments on videoID.
func (v *videoService) Comments(ctx context.Context, videoID string, page int) (*models.CommentPage, error) {
	if videoID == "" {
		return nil, api.NewValidationError("video id is required")
	}
	var out models.CommentPage
	if err := v.api.Get(ctx, api.EndpointVideoComments(videoID), pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AddComment posts a comment and drops the cached comment pages for the video.
func (v *videoService) AddComment(ctx context.Context, videoID, text string) (*models.Comment, error) {
	if videoID == "" {
		return nil, api.NewValidationError("video id is required")
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return nil, api.NewValidationError("comment text is required")
	}

	body := struct {
		Text string `json:"text"`
	}{Text: text}

	var out models.Comment
	if err := v.api.Post(ctx, api.EndpointVideoComments(videoID), body, &out); err != nil {
		return nil, err
	}
	v.api.InvalidateCachePattern(videoID)
	return &out, nil
}
