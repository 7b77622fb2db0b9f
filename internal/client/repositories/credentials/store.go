// Package credentials persists the long-lived refresh token and the cached
// user record across process restarts.
//
// Two layers: SQLiteRepository is plain key/value access that returns errors;
// Store is the typed, best-effort surface the session logic uses. Every Store
// operation degrades to a logged no-op on failure so callers can always treat
// storage trouble as "no stored value" and proceed.
package credentials

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/models"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/dbx"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/logging"
)

// Stored keys. Each key has exactly one known value shape; don't reuse them.
const (
	keyRefreshToken = "refresh_token"
	keyUser         = "user"
)

// Store is the typed credential store.
type Store struct {
	db  *sql.DB
	log logging.Logger
}

func NewStore(db *sql.DB, log logging.Logger) *Store {
	return &Store{db: db, log: log}
}

func (s *Store) repo() Repository {
	return NewSQLiteRepository(s.db)
}

// RefreshToken returns the persisted refresh token, or absence if none is
// stored or the read failed.
func (s *Store) RefreshToken(ctx context.Context) (string, bool) {
	value, err := s.repo().Get(ctx, keyRefreshToken)
	if err != nil {
		s.log.Warn(ctx, "credential read failed", "key", keyRefreshToken, "error", err)
		return "", false
	}
	if len(value) == 0 {
		return "", false
	}
	return string(value), true
}

// SaveRefreshToken stores the refresh token. An empty token deletes the key.
func (s *Store) SaveRefreshToken(ctx context.Context, token string) {
	var err error
	if token == "" {
		err = s.repo().Delete(ctx, keyRefreshToken)
	} else {
		err = s.repo().Set(ctx, keyRefreshToken, []byte(token))
	}
	if err != nil {
		s.log.Warn(ctx, "credential write failed", "key", keyRefreshToken, "error", err)
	}
}

// User returns the cached user record. A record that no longer parses is
// deleted and reported as absent, so one corrupted write cannot wedge the
// store forever.
func (s *Store) User(ctx context.Context) (*models.User, bool) {
	value, err := s.repo().Get(ctx, keyUser)
	if err != nil {
		s.log.Warn(ctx, "credential read failed", "key", keyUser, "error", err)
		return nil, false
	}
	if len(value) == 0 {
		return nil, false
	}

	var u models.User
	if err := json.Unmarshal(value, &u); err != nil {
		s.log.Warn(ctx, "removing corrupted credential entry", "key", keyUser, "error", err)
		if derr := s.repo().Delete(ctx, keyUser); derr != nil {
			s.log.Warn(ctx, "credential delete failed", "key", keyUser, "error", derr)
		}
		return nil, false
	}
	return &u, true
}

// SaveUser stores the user record as JSON. A nil user deletes the key.
func (s *Store) SaveUser(ctx context.Context, u *models.User) {
	if u == nil {
		if err := s.repo().Delete(ctx, keyUser); err != nil {
			s.log.Warn(ctx, "credential delete failed", "key", keyUser, "error", err)
		}
		return
	}

	value, err := json.Marshal(u)
	if err != nil {
		s.log.Warn(ctx, "credential marshal failed", "key", keyUser, "error", err)
		return
	}
	if err := s.repo().Set(ctx, keyUser, value); err != nil {
		s.log.Warn(ctx, "credential write failed", "key", keyUser, "error", err)
	}
}

// SaveAuth stores the refresh token and user record in a single transaction,
// so a crash between the two writes cannot leave them out of step.
func (s *Store) SaveAuth(ctx context.Context, refreshToken string, u *models.User) {
	value, err := json.Marshal(u)
	if err != nil {
		s.log.Warn(ctx, "credential marshal failed", "key", keyUser, "error", err)
		return
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := NewSQLiteRepository(tx)
		if err := repo.Set(ctx, keyRefreshToken, []byte(refreshToken)); err != nil {
			return err
		}
		return repo.Set(ctx, keyUser, value)
	})
	if err != nil {
		s.log.Warn(ctx, "credential write failed", "error", err)
	}
}

// Clear wipes every stored credential (logout).
func (s *Store) Clear(ctx context.Context) {
	if err := s.repo().Clear(ctx); err != nil {
		s.log.Warn(ctx, "credential clear failed", "error", err)
	}
}
