package services

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"

	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/api"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/client/models"
	"github.com/Marino-Rizk/Tiktok-Clone-App/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthService_Login_InstallsSession(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.EndpointAuthLogin, r.URL.Path)

		var req LoginRequest
		require.NoError(t, decodeBody(r, &req))
		assert.Equal(t, "alice@example.com", req.Email)

		respondJSON(t, w, http.StatusOK, models.AuthPayload{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         models.User{ID: "u1", UserName: "alice"},
		})
	}))

	user, err := e.auth.Login(context.Background(), LoginRequest{
		Email:    "alice@example.com",
		Password: "hunter42x",
	})
	require.NoError(t, err)
	assert.Equal(t, "alice", user.UserName)

	tok, ok := e.tokens.Get()
	require.True(t, ok)
	assert.Equal(t, "access-1", tok)

	rt, ok := e.creds.RefreshToken(context.Background())
	require.True(t, ok)
	assert.Equal(t, "refresh-1", rt)

	cached, ok := e.creds.User(context.Background())
	require.True(t, ok)
	assert.Equal(t, "u1", cached.ID)
	assert.True(t, e.auth.IsAuthenticated())
}

func TestAuthService_Login_ValidationRejectsBeforeNetwork(t *testing.T) {
	var hits atomic.Int32
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	_, err := e.auth.Login(context.Background(), LoginRequest{Email: "not-an-email", Password: "x"})
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindValidation, apiErr.Kind)
	assert.True(t, errors.Is(err, common.ErrorValidation))
	assert.Equal(t, int32(0), hits.Load(), "invalid input must never reach the network")
}

func TestAuthService_Register_PasswordRules(t *testing.T) {
	var hits atomic.Int32
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	tests := []struct {
		name     string
		password string
	}{
		{name: "too short", password: "ab1"},
		{name: "no digit", password: "abcdefghij"},
		{name: "empty", password: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.auth.Register(context.Background(), RegisterRequest{
				UserName: "alice",
				Email:    "alice@example.com",
				Password: tt.password,
			})
			require.Error(t, err)

			var apiErr *api.Error
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, api.KindValidation, apiErr.Kind)
		})
	}
	assert.Equal(t, int32(0), hits.Load())
}

func TestAuthService_Register_InstallsSession(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.EndpointAuthRegister, r.URL.Path)
		respondJSON(t, w, http.StatusCreated, models.AuthPayload{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         models.User{ID: "u2", UserName: "bob"},
		})
	}))

	user, err := e.auth.Register(context.Background(), RegisterRequest{
		UserName: "bob",
		Email:    "bob@example.com",
		Password: "sup3rsecret",
	})
	require.NoError(t, err)
	assert.Equal(t, "bob", user.UserName)
	assert.True(t, e.auth.IsAuthenticated())
}

func TestAuthService_Logout_WipesSession(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		respondJSON(t, w, http.StatusOK, models.AuthPayload{
			AccessToken:  "access-1",
			RefreshToken: "refresh-1",
			User:         models.User{ID: "u1"},
		})
	}))

	_, err := e.auth.Login(context.Background(), LoginRequest{Email: "a@b.co", Password: "p"})
	require.NoError(t, err)
	require.True(t, e.auth.IsAuthenticated())

	e.auth.Logout(context.Background())

	assert.False(t, e.auth.IsAuthenticated())
	_, ok := e.creds.RefreshToken(context.Background())
	assert.False(t, ok)
	_, ok = e.creds.User(context.Background())
	assert.False(t, ok)
}

func TestAuthService_Verify_RejectionEndsSession(t *testing.T) {
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case api.EndpointAuthVerifyToken:
			respondJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "token invalid"})
		case api.EndpointAuthRefreshToken:
			// the whole session is gone server-side
			respondJSON(t, w, http.StatusUnauthorized, map[string]string{"message": "refresh token revoked"})
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
		}
	}))

	e.tokens.Set("some-token")
	e.creds.SaveRefreshToken(context.Background(), "refresh-1")

	err := e.auth.Verify(context.Background(), "")
	require.Error(t, err)

	var apiErr *api.Error
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, api.KindUnauthorized, apiErr.Kind)

	assert.False(t, e.auth.IsAuthenticated())
	_, ok := e.creds.RefreshToken(context.Background())
	assert.False(t, ok)
}

func TestAuthService_Restore_ResumesPersistedSession(t *testing.T) {
	var refreshCalls atomic.Int32
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.EndpointAuthRefreshToken, r.URL.Path)
		refreshCalls.Add(1)
		respondJSON(t, w, http.StatusOK, models.AuthPayload{
			AccessToken:  "access-2",
			RefreshToken: "refresh-2",
			User:         models.User{ID: "u1", UserName: "alice"},
		})
	}))

	// a previous run left only the durable half of the session behind
	e.creds.SaveRefreshToken(context.Background(), "refresh-1")

	require.True(t, e.auth.Restore(context.Background()))
	assert.Equal(t, int32(1), refreshCalls.Load())

	tok, ok := e.tokens.Get()
	require.True(t, ok)
	assert.Equal(t, "access-2", tok)
}

func TestAuthService_Refresh_ForcesNewPair(t *testing.T) {
	var refreshCalls atomic.Int32
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, api.EndpointAuthRefreshToken, r.URL.Path)
		refreshCalls.Add(1)
		respondJSON(t, w, http.StatusOK, models.AuthPayload{
			AccessToken:  "access-2",
			RefreshToken: "refresh-2",
			User:         models.User{ID: "u1"},
		})
	}))

	e.tokens.Set("access-1")
	e.creds.SaveRefreshToken(context.Background(), "refresh-1")

	require.NoError(t, e.auth.Refresh(context.Background()))
	assert.Equal(t, int32(1), refreshCalls.Load())

	tok, _ := e.tokens.Get()
	assert.Equal(t, "access-2", tok)
	rt, _ := e.creds.RefreshToken(context.Background())
	assert.Equal(t, "refresh-2", rt)
}

func TestAuthService_Restore_NothingPersisted(t *testing.T) {
	var hits atomic.Int32
	e := newEnv(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))

	assert.False(t, e.auth.Restore(context.Background()))
	assert.Equal(t, int32(0), hits.Load(), "no restore attempt without a stored refresh token")
}
