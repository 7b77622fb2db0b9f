package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/api"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/config"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/repositories/credentials"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/token"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/logging"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"
)

// env bundles everything a service test needs: the stores behind the client
// and the constructed services.
type env struct {
	tokens *token.Store
	creds  *credentials.Store
	client *api.Client

	auth          AuthService
	users         UserService
	video         VideoService
	notifications NotificationService
}

func newEnv(t *testing.T, handler http.Handler) *env {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &config.Config{}
	cfg.LoadDefaults()
	cfg.BaseURL = srv.URL
	cfg.RequestTimeout = 2 * time.Second
	cfg.RetryDelay = 10 * time.Millisecond

	db, err := credentials.InitDatabase(context.Background(),
		"file:"+uuid.NewString()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	tokens := token.NewStore()
	creds := credentials.NewStore(db, logging.NewNopLogger())
	client := api.New(cfg, tokens, creds, logging.NewNopLogger())

	return &env{
		tokens: tokens,
		creds:  creds,
		client: client,
		auth:          NewAuthService(client, tokens, creds),
		users:         NewUserService(client, creds),
		video:         NewVideoService(client),
		notifications: NewNotificationService(client),
	}
}

func decodeBody(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

func respondJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}
