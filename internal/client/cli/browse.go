package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/api"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/models"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/services"
)

// Profile fetches and prints the signed-in user's profile.
func (a *App) Profile(ctx context.Context) error {
	u, err := a.session.Users.Profile(ctx)
	if err != nil {
		return err
	}
	printlnFn(fmt.Sprintf("%s (%s)  followers: %d  following: %d  videos: %d",
		u.UserName, u.DisplayName, u.FollowersCount, u.FollowingCount, u.VideoCount))
	return nil
}

// Feed prints one page of a feed. Usage: feed [home|for-you|following].
func (a *App) Feed(ctx context.Context, args []string) error {
	feed := services.FeedHome
	if len(args) > 0 {
		feed = services.Feed(args[0])
	}

	page, err := a.session.Videos.Feed(ctx, feed, 1)
	if err != nil {
		return err
	}
	printVideos(page.Videos)
	return nil
}

// Search looks up users or videos. Usage: search [users|videos] <query...>.
func (a *App) Search(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return api.NewValidationError("usage: search [users|videos] <query>")
	}

	kind := "videos"
	switch args[0] {
	case "users", "videos":
		kind = args[0]
		args = args[1:]
	}
	query := strings.Join(args, " ")

	if kind == "users" {
		page, err := a.session.Users.Search(ctx, query, 1)
		if err != nil {
			return err
		}
		for _, u := range page.Users {
			printlnFn(fmt.Sprintf("  @%s  %s  (%d followers)", u.UserName, u.DisplayName, u.FollowersCount))
		}
		return nil
	}

	page, err := a.session.Videos.Search(ctx, query, 1)
	if err != nil {
		return err
	}
	printVideos(page.Videos)
	return nil
}

// Follow subscribes to a user. Usage: follow <user-id>.
func (a *App) Follow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return api.NewValidationError("usage: follow <user-id>")
	}
	if err := a.session.Users.Follow(ctx, args[0]); err != nil {
		return err
	}
	printlnFn("now following " + args[0])
	return nil
}

// Unfollow removes a subscription. Usage: unfollow <user-id>.
func (a *App) Unfollow(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return api.NewValidationError("usage: unfollow <user-id>")
	}
	if err := a.session.Users.Unfollow(ctx, args[0]); err != nil {
		return err
	}
	printlnFn("unfollowed " + args[0])
	return nil
}

// Like marks a video liked. Usage: like <video-id>.
func (a *App) Like(ctx context.Context, args []string) error {
	if len(args) != 1 {
		return api.NewValidationError("usage: like <video-id>")
	}
	return a.session.Videos.Like(ctx, args[0])
}

// Comment posts a comment. Usage: comment <video-id> <text...>.
func (a *App) Comment(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return api.NewValidationError("usage: comment <video-id> <text>")
	}
	_, err := a.session.Videos.AddComment(ctx, args[0], strings.Join(args[1:], " "))
	return err
}

// Notifications prints the first page of the inbox and marks it read.
func (a *App) Notifications(ctx context.Context) error {
	page, err := a.session.Notifications.List(ctx, 1)
	if err != nil {
		return err
	}
	if len(page.Notifications) == 0 {
		printlnFn("  no notifications")
		return nil
	}
	for _, n := range page.Notifications {
		marker := " "
		if !n.Read {
			marker = "*"
		}
		printlnFn(fmt.Sprintf("%s [%s] @%s: %s", marker, n.Type, n.FromUserName, n.Message))
	}
	return a.session.Notifications.MarkRead(ctx)
}

func printVideos(videos []models.Video) {
	if len(videos) == 0 {
		printlnFn("  (nothing here)")
		return
	}
	for _, v := range videos {
		printlnFn(fmt.Sprintf("  [%s] @%s: %s  (%d likes, %d views)",
			v.ID, v.UserName, v.Caption, v.LikeCount, v.ViewCount))
	}
}
