package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("hunter2secret")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter2secret", hash)
	assert.True(t, strings.HasPrefix(hash, "$2a$10$"))

	assert.True(t, CheckPassword(hash, "hunter2secret"))
	assert.False(t, CheckPassword(hash, "wrong"))
	assert.False(t, CheckPassword("not-a-hash", "hunter2secret"))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	h1, err := HashPassword("same password")
	require.NoError(t, err)
	h2, err := HashPassword("same password")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestTokenManager_IssueAndVerify(t *testing.T) {
	mgr := NewTokenManager("test-secret")

	token, err := mgr.Issue("user-123")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	userID, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)
}

func TestTokenManager_WrongSecret(t *testing.T) {
	token, err := NewTokenManager("secret-a").Issue("user-123")
	require.NoError(t, err)

	_, err = NewTokenManager("secret-b").Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenManager_Garbage(t *testing.T) {
	mgr := NewTokenManager("test-secret")

	for _, tok := range []string{"", "garbage", "a.b.c"} {
		_, err := mgr.Verify(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	}
}

func TestTokenManager_Expiry(t *testing.T) {
	mgr := NewTokenManager("test-secret")
	issued := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	mgr.now = func() time.Time { return issued }

	token, err := mgr.Issue("user-123")
	require.NoError(t, err)

	mgr.now = func() time.Time { return issued.Add(6 * 24 * time.Hour) }
	userID, err := mgr.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, "user-123", userID)

	mgr.now = func() time.Time { return issued.Add(8 * 24 * time.Hour) }
	_, err = mgr.Verify(token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
