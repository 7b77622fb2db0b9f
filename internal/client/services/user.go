package services

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/api"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/models"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/repositories/credentials"
)

// ProfileUpdate carries the optional profile fields; zero values are omitted
// from the request. Avatar, when set, is sent as a multipart file part.
type ProfileUpdate struct {
	DisplayName string
	Avatar      *api.UploadFile
}

// UserService defines profile and social-graph operations.
type UserService interface {
	Profile(ctx context.Context) (*models.User, error)
	CachedProfile(ctx context.Context) (*models.User, bool)
	UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error)
	Followers(ctx context.Context, page int) (*models.UserPage, error)
	Following(ctx context.Context, page int) (*models.UserPage, error)
	Follow(ctx context.Context, userID string) error
	Unfollow(ctx context.Context, userID string) error
	Search(ctx context.Context, query string, page int) (*models.UserPage, error)
}

type userService struct {
	api   *api.Client
	creds *credentials.Store
}

// NewUserService constructs a UserService over the given pipeline. The
// credential store keeps the locally cached copy of the own profile current.
func NewUserService(client *api.Client, creds *credentials.Store) UserService {
	return &userService{api: client, creds: creds}
}

// Profile fetches the signed-in user's profile and refreshes the local copy.
func (u *userService) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := u.api.Get(ctx, api.EndpointUserProfile, nil, &user); err != nil {
		return nil, err
	}
	u.creds.SaveUser(ctx, &user)
	return &user, nil
}

// CachedProfile returns the locally stored profile without a network call,
// for instant display while Profile fetches the current one.
func (u *userService) CachedProfile(ctx context.Context) (*models.User, bool) {
	return u.creds.User(ctx)
}

// UpdateProfile sends the changed fields, as multipart when an avatar is
// included, and invalidates cached profile reads.
func (u *userService) UpdateProfile(ctx context.Context, upd ProfileUpdate) (*models.User, error) {
	var user models.User
	var err error

	if upd.Avatar != nil {
		fields := map[string]string{}
		if upd.DisplayName != "" {
			fields["displayName"] = upd.DisplayName
		}
		err = u.api.Upload(ctx, api.EndpointUserUpdate, []api.UploadFile{*upd.Avatar}, fields, &user)
	} else {
		if upd.DisplayName == "" {
			return nil, api.NewValidationError("nothing to update")
		}
		body := struct {
			DisplayName string `json:"displayName"`
		}{DisplayName: upd.DisplayName}
		err = u.api.Put(ctx, api.EndpointUserUpdate, body, &user)
	}
	if err != nil {
		return nil, err
	}

	u.creds.SaveUser(ctx, &user)
	u.api.InvalidateCachePattern(api.EndpointUserProfile)
	return &user, nil
}

// Followers lists the accounts following the signed-in user.
func (u *userService) Followers(ctx context.Context, page int) (*models.UserPage, error) {
	var out models.UserPage
	if err := u.api.Get(ctx, api.EndpointUserFollowers, pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Following lists the accounts the signed-in user follows.
func (u *userService) Following(ctx context.Context, page int) (*models.UserPage, error) {
	var out models.UserPage
	if err := u.api.Get(ctx, api.EndpointUserFollowing, pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Follow subscribes to userID and drops cached social-graph reads.
func (u *userService) Follow(ctx context.Context, userID string) error {
	if userID == "" {
		return api.NewValidationError("user id is required")
	}
	if err := u.api.Post(ctx, api.EndpointUserFollow(userID), nil, nil); err != nil {
		return err
	}
	u.api.InvalidateCachePattern("/user/")
	u.api.InvalidateCachePattern("/feed/")
	return nil
}

// Unfollow removes the subscription to userID.
func (u *userService) Unfollow(ctx context.Context, userID string) error {
	if userID == "" {
		return api.NewValidationError("user id is required")
	}
	if err := u.api.Post(ctx, api.EndpointUserUnfollow(userID), nil, nil); err != nil {
		return err
	}
	u.api.InvalidateCachePattern("/user/")
	u.api.InvalidateCachePattern("/feed/")
	return nil
}

// Search finds users by name. An empty query is rejected locally.
func (u *userService) Search(ctx context.Context, query string, page int) (*models.UserPage, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, api.NewValidationError("search query is required")
	}

	q := pageQuery(page)
	q.Set("q", query)

	var out models.UserPage
	if err := u.api.Get(ctx, api.EndpointUserSearch, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// pageQuery builds the common pagination query. Page numbers start at 1;
// anything lower means the first page.
func pageQuery(page int) url.Values {
	if page < 1 {
		page = 1
	}
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	return q
}
