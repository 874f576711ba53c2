package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/jwt"
)

func resolveUser(t *testing.T, auth *Auth, req *http.Request) *domain.User {
	t.Helper()
	var got *domain.User
	handler := auth.Resolve()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = GetUserFromContext(r)
		w.WriteHeader(http.StatusOK)
	}))
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)
	require.Equal(t, http.StatusOK, rr.Code)
	return got
}

func TestResolveFromAuthorizationHeader(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	token, err := jwtService.NewToken(domain.User{Id: 7, Name: "bob"})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/threads", nil)
	req.Header.Set("Authorization", "Bearer "+token)

	user := resolveUser(t, NewAuth(jwtService), req)
	require.NotNil(t, user)
	assert.EqualValues(t, 7, user.Id)
}

func TestResolveFromCookie(t *testing.T) {
	jwtService := jwt.New("secret", time.Hour)
	token, err := jwtService.NewToken(domain.User{Id: 3})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/threads", nil)
	req.AddCookie(&http.Cookie{Name: "accessToken", Value: token})

	user := resolveUser(t, NewAuth(jwtService), req)
	require.NotNil(t, user)
	assert.EqualValues(t, 3, user.Id)
}

func TestResolveAnonymousWithoutToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/threads", nil)
	user := resolveUser(t, NewAuth(jwt.New("secret", time.Hour)), req)
	assert.Nil(t, user)
}

func TestResolveAnonymousWithBadToken(t *testing.T) {
	req := httptest.NewRequest(http.MethodDelete, "/threads/1", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	user := resolveUser(t, NewAuth(jwt.New("secret", time.Hour)), req)
	assert.Nil(t, user)
}
