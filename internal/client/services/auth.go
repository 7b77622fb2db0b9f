// Package services contains the application services for the client: the
// operations the UI layer calls, expressed over the shared request pipeline.
// This file defines the authentication service: register, login, token
// verification, session restore, and logout.
package services

import (
	"context"
	"errors"
	"strings"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/api"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/models"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/repositories/credentials"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/token"
	"github.com/go-playground/validator/v10"
)

// RegisterRequest is the input for account creation. Validated locally before
// any network call.
type RegisterRequest struct {
	UserName string `json:"userName" validate:"required,min=3,max=30"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,containsdigit"`
}

// LoginRequest is the input for authentication.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AuthService defines the authentication operations for the UI.
//
// Contract:
//   - Register: create an account and start a session.
//   - Login: authenticate and start a session.
//   - Verify: check a token against the server; an invalid token ends the session.
//   - Refresh: exchange the stored refresh token for a new pair now.
//   - Restore: silently resume a persisted session at startup.
//   - Logout: end the session and wipe local state.
//   - CurrentUser: the signed-in user, from memory or the credential cache.
//   - IsAuthenticated: whether an access token is currently held.
//
// All methods honor context cancellation.
type AuthService interface {
	Register(ctx context.Context, req RegisterRequest) (*models.User, error)
	Login(ctx context.Context, req LoginRequest) (*models.User, error)
	Verify(ctx context.Context, accessToken string) error
	Refresh(ctx context.Context) error
	Restore(ctx context.Context) bool
	Logout(ctx context.Context)
	CurrentUser(ctx context.Context) (*models.User, bool)
	IsAuthenticated() bool
}

type authService struct {
	api    *api.Client
	tokens *token.Store
	creds  *credentials.Store
}

// NewAuthService constructs an AuthService over the given pipeline and stores.
func NewAuthService(client *api.Client, tokens *token.Store, creds *credentials.Store) AuthService {
	return &authService{api: client, tokens: tokens, creds: creds}
}

// Register creates the account and installs the returned session like a login.
func (a *authService) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var payload models.AuthPayload
	if err := a.api.Post(ctx, api.EndpointAuthRegister, req, &payload); err != nil {
		return nil, err
	}
	a.installSession(ctx, &payload)
	return &payload.User, nil
}

// Login authenticates and installs the session: access token in memory,
// refresh token and user persisted.
func (a *authService) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	if err := validate.Struct(req); err != nil {
		return nil, validationError(err)
	}

	var payload models.AuthPayload
	if err := a.api.Post(ctx, api.EndpointAuthLogin, req, &payload); err != nil {
		return nil, err
	}
	a.installSession(ctx, &payload)
	return &payload.User, nil
}

func (a *authService) installSession(ctx context.Context, payload *models.AuthPayload) {
	a.tokens.Set(payload.AccessToken)
	a.creds.SaveAuth(ctx, payload.RefreshToken, &payload.User)
}

// Verify checks accessToken (or the current one when empty) against the
// server. A definitive rejection ends the local session; transient failures
// leave it alone.
func (a *authService) Verify(ctx context.Context, accessToken string) error {
	if accessToken == "" {
		cur, ok := a.tokens.Get()
		if !ok {
			return api.NewValidationError("no token to verify")
		}
		accessToken = cur
	}

	body := struct {
		Token string `json:"token"`
	}{Token: accessToken}

	err := a.api.Post(ctx, api.EndpointAuthVerifyToken, body, nil)
	if err == nil {
		return nil
	}

	var apiErr *api.Error
	if errors.As(err, &apiErr) && apiErr.Kind == api.KindUnauthorized {
		a.api.ClearSession(ctx)
	}
	return err
}

// Refresh exchanges the stored refresh token for a new pair immediately.
// Failure ends the session, exactly as on the transparent refresh path.
func (a *authService) Refresh(ctx context.Context) error {
	return a.api.Refresh(ctx)
}

// Restore resumes a persisted session, if any. Safe to call on every startup.
func (a *authService) Restore(ctx context.Context) bool {
	return a.api.RestoreSession(ctx)
}

// Logout wipes the in-memory token, the persisted credentials, and every
// cached response. It never fails: local cleanup has no precondition.
func (a *authService) Logout(ctx context.Context) {
	a.api.ClearSession(ctx)
	a.api.InvalidateCache()
}

// CurrentUser returns the cached user record, if one is stored.
func (a *authService) CurrentUser(ctx context.Context) (*models.User, bool) {
	return a.creds.User(ctx)
}

// IsAuthenticated reports whether an access token is currently in memory.
func (a *authService) IsAuthenticated() bool {
	_, ok := a.tokens.Get()
	return ok
}

// validationError folds validator field errors into one client-side *Error.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return api.NewValidationError(err.Error())
	}

	parts := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		switch fe.Tag() {
		case "required":
			parts = append(parts, fe.Field()+" is required")
		case "email":
			parts = append(parts, fe.Field()+" must be a valid email address")
		case "min":
			parts = append(parts, fe.Field()+" must be at least "+fe.Param()+" characters")
		case "max":
			parts = append(parts, fe.Field()+" must be at most "+fe.Param()+" characters")
		case "containsdigit":
			parts = append(parts, fe.Field()+" must contain a digit")
		default:
			parts = append(parts, fe.Field()+" is invalid")
		}
	}
	return api.NewValidationError(strings.Join(parts, "; "))
}
