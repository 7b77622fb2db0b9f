// Package session wires the client together: configuration, the local
// credential database, the token store, the request pipeline, and the
// application services. A Session is what an embedding UI holds on to.
package session

import (
	"context"
	"database/sql"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/api"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/config"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/repositories/credentials"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/services"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/token"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/logging"
)

// Session owns the shared state of one signed-in (or signed-out) client.
type Session struct {
	Config *config.Config
	Tokens *token.Store
	Creds  *credentials.Store
	API    *api.Client

	Auth          services.AuthService
	Users         services.UserService
	Videos        services.VideoService
	Notifications services.NotificationService

	db  *sql.DB
	log logging.Logger
}

// New opens the credential database, runs pending migrations, and builds the
// full service stack. The caller must Close the session when done.
func New(ctx context.Context, cfg *config.Config, log logging.Logger) (*Session, error) {
	db, err := credentials.InitDatabase(ctx, cfg.CredentialsDSN)
	if err != nil {
		return nil, err
	}

	tokens := token.NewStore()
	creds := credentials.NewStore(db, log)
	client := api.New(cfg, tokens, creds, log)

	return &Session{
		Config: cfg,
		Tokens: tokens,
		Creds:  creds,
		API:    client,
		Auth:          services.NewAuthService(client, tokens, creds),
		Users:         services.NewUserService(client, creds),
		Videos:        services.NewVideoService(client),
		Notifications: services.NewNotificationService(client),
		db:            db,
		log:           log,
	}, nil
}

// Restore attempts to resume a persisted session. Call once at startup.
func (s *Session) Restore(ctx context.Context) bool {
	return s.Auth.Restore(ctx)
}

// Close releases the credential database.
func (s *Session) Close() error {
	return s.db.Close()
}
