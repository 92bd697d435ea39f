package repository

import (
	"context"
	"testing"
	"time"

	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupQuoteRepo(t *testing.T) (context.Context, *SQLiteFavoriteQuoteRepo, *domain.User) {
	t.Helper()
	database := testutil.NewTestDB(t)
	ctx := context.Background()

	owner := testutil.NewTestUser("Quote Fan")
	require.NoError(t, NewSQLiteUserRepo(database).Create(ctx, owner))

	return ctx, NewSQLiteFavoriteQuoteRepo(database), owner
}

func TestFavoriteQuoteRepo_CreateAndListRecent(t *testing.T) {
	ctx, quotes, owner := setupQuoteRepo(t)

	older := testutil.NewTestFavoriteQuote(owner.ID, "Older wisdom.", "A")
	newer := testutil.NewTestFavoriteQuote(owner.ID, "Newer wisdom.", "B")
	newer.CreatedAt = older.CreatedAt.Add(time.Minute)
	require.NoError(t, quotes.Create(ctx, older))
	require.NoError(t, quotes.Create(ctx, newer))

	got, err := quotes.ListRecent(ctx, owner.ID, 6)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Newer wisdom.", got[0].Quote, "most recent first")

	limited, err := quotes.ListRecent(ctx, owner.ID, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestFavoriteQuoteRepo_Exists(t *testing.T) {
	ctx, quotes, owner := setupQuoteRepo(t)

	q := testutil.NewTestFavoriteQuote(owner.ID, "Discipline beats motivation.", "Unknown")
	require.NoError(t, quotes.Create(ctx, q))

	exists, err := quotes.Exists(ctx, owner.ID, "Discipline beats motivation.", "Unknown")
	require.NoError(t, err)
	assert.True(t, exists)

	exists, err = quotes.Exists(ctx, owner.ID, "Discipline beats motivation.", "Someone")
	require.NoError(t, err)
	assert.False(t, exists, "author is part of the dedup key")

	exists, err = quotes.Exists(ctx, "someone-else", "Discipline beats motivation.", "Unknown")
	require.NoError(t, err)
	assert.False(t, exists, "dedup is owner-scoped")
}

func TestFavoriteQuoteRepo_Delete_Scoped(t *testing.T) {
	ctx, quotes, owner := setupQuoteRepo(t)

	q := testutil.NewTestFavoriteQuote(owner.ID, "Keep me.", "A")
	require.NoError(t, quotes.Create(ctx, q))

	require.NoError(t, quotes.Delete(ctx, "someone-else", q.ID))
	got, err := quotes.ListRecent(ctx, owner.ID, 6)
	require.NoError(t, err)
	assert.Len(t, got, 1, "delete under the wrong owner must not remove the row")

	require.NoError(t, quotes.Delete(ctx, owner.ID, q.ID))
	got, err = quotes.ListRecent(ctx, owner.ID, 6)
	require.NoError(t, err)
	assert.Empty(t, got)
}
