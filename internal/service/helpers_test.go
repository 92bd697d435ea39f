package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mariechen/ticked/internal/db"
	"github.com/mariechen/ticked/internal/domain"
	"github.com/mariechen/ticked/internal/repository"
	"github.com/mariechen/ticked/internal/testutil"
)

// testEnv bundles everything the service tests need against one
// in-memory database.
type testEnv struct {
	db        *sql.DB
	uow       db.UnitOfWork
	items     *repository.SQLiteItemRepo
	subtasks  *repository.SQLiteSubtaskRepo
	users     *repository.SQLiteUserRepo
	favorites *repository.SQLiteFavoriteQuoteRepo
	owner     *domain.User
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	database := testutil.NewTestDB(t)
	env := &testEnv{
		db:        database,
		uow:       testutil.NewTestUoW(database),
		items:     repository.NewSQLiteItemRepo(database),
		subtasks:  repository.NewSQLiteSubtaskRepo(database),
		users:     repository.NewSQLiteUserRepo(database),
		favorites: repository.NewSQLiteFavoriteQuoteRepo(database),
		owner:     testutil.NewTestUser("Marie"),
	}
	require.NoError(t, env.users.Create(context.Background(), env.owner))
	return env
}

func (e *testEnv) seedUser(t *testing.T, name string) *domain.User {
	t.Helper()
	u := testutil.NewTestUser(name)
	require.NoError(t, e.users.Create(context.Background(), u))
	return u
}

func (e *testEnv) seedItem(t *testing.T, ownerID, title string, opts ...testutil.ItemOption) *domain.Item {
	t.Helper()
	item := testutil.NewTestItem(ownerID, title, opts...)
	require.NoError(t, e.items.Create(context.Background(), item))
	return item
}

func (e *testEnv) itemService() ItemService {
	return NewItemService(e.items, e.uow)
}
