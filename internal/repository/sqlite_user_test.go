package repository

import (
	"context"
	"testing"

	"github.com/mariechen/ticked/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserRepo_CreateAndGet(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	ctx := context.Background()

	u := testutil.NewTestUser("Ada")
	require.NoError(t, users.Create(ctx, u))

	byID, err := users.GetByID(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, u.Email, byID.Email)

	byEmail, err := users.GetByEmail(ctx, u.Email)
	require.NoError(t, err)
	assert.Equal(t, u.ID, byEmail.ID)
	assert.Equal(t, u.PasswordHash, byEmail.PasswordHash)
}

func TestUserRepo_GetMissing(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	ctx := context.Background()

	_, err := users.GetByID(ctx, "nope")
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = users.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserRepo_DuplicateEmailRejected(t *testing.T) {
	database := testutil.NewTestDB(t)
	users := NewSQLiteUserRepo(database)
	ctx := context.Background()

	u := testutil.NewTestUser("Ada")
	require.NoError(t, users.Create(ctx, u))

	dup := testutil.NewTestUser("Imposter")
	dup.Email = u.Email
	err := users.Create(ctx, dup)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNIQUE")
}
