package jwt

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threadhub-dev/threadhub/internal/domain"
)

func TestTokenRoundTrip(t *testing.T) {
	svc := New("secret", time.Hour)

	token, err := svc.NewToken(domain.User{Id: 42, Name: "alice"})
	require.NoError(t, err)
	require.NotEmpty(t, token)

	user, err := svc.ParseToken(token)
	require.NoError(t, err)
	assert.EqualValues(t, 42, user.Id)
	assert.Equal(t, "alice", user.Name)
}

func TestParseTokenWrongKey(t *testing.T) {
	token, err := New("secret", time.Hour).NewToken(domain.User{Id: 1})
	require.NoError(t, err)

	_, err = New("other-secret", time.Hour).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenExpired(t *testing.T) {
	token, err := New("secret", -time.Minute).NewToken(domain.User{Id: 1})
	require.NoError(t, err)

	_, err = New("secret", time.Hour).ParseToken(token)
	assert.Error(t, err)
}

func TestParseTokenGarbage(t *testing.T) {
	_, err := New("secret", time.Hour).ParseToken("not-a-token")
	assert.Error(t, err)
}
