package db

import (
	"context"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"teamboard/internal/config"
	"teamboard/internal/core/domain"
)

func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db, err := ConnectSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, Migrate(context.Background(), db))
	return db
}

func setupSeededDB(t *testing.T) *sqlx.DB {
	t.Helper()

	db := setupTestDB(t)
	require.NoError(t, SeedSampleData(context.Background(), db))
	return db
}

func TestConnectDB_UnknownDriver(t *testing.T) {
	_, err := ConnectDB(&config.Config{DbDriver: "postgres"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "postgres")
}

func TestConnectDB_SQLite(t *testing.T) {
	db, err := ConnectDB(&config.Config{DbDriver: config.DriverSQLite, SqlitePath: ":memory:"})
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, "sqlite", db.DriverName())
}

func TestMigrate_Idempotent(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, Migrate(context.Background(), db))
}

func TestSeedSampleData(t *testing.T) {
	db := setupSeededDB(t)
	ctx := context.Background()

	users, err := NewUserRepository(db).CountUsers(ctx)
	require.NoError(t, err)
	shops, err := NewShopRepository(db).CountShops(ctx)
	require.NoError(t, err)
	channels, err := NewChannelRepository(db).CountChannels(ctx)
	require.NoError(t, err)

	assert.Equal(t, 5, users)
	assert.Equal(t, 5, shops)
	assert.Equal(t, 5, channels)

	// A second run must not duplicate rows.
	require.NoError(t, SeedSampleData(ctx, db))
	users, err = NewUserRepository(db).CountUsers(ctx)
	require.NoError(t, err)
	assert.Equal(t, 5, users)
}

func TestUserRepository_ListNewestFirst(t *testing.T) {
	repo := NewUserRepository(setupSeededDB(t))

	users, err := repo.ListUsers(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, users, 5)
	assert.Equal(t, "Charlie Wilson", users[0].Name)
	assert.Equal(t, "John Doe", users[4].Name)
	assert.Equal(t, "john@example.com", users[4].Email)
	assert.False(t, users[4].CreatedAt.IsZero())
}

func TestUserRepository_ListPaginated(t *testing.T) {
	repo := NewUserRepository(setupSeededDB(t))

	users, err := repo.ListUsers(context.Background(), &domain.Page{Number: 2, Limit: 2})

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, "Bob Johnson", users[0].Name)
	assert.Equal(t, "Jane Smith", users[1].Name)
}

func TestUserRepository_CRUD(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	ctx := context.Background()

	created, err := repo.CreateUser(ctx, domain.UserInput{Name: "Dana White", Email: "dana@example.com"})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, "Dana White", created.Name)

	got, err := repo.GetUser(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.Email, got.Email)

	updated, err := repo.UpdateUser(ctx, created.ID, domain.UserInput{Name: "Dana Black", Email: "dana.b@example.com"})
	require.NoError(t, err)
	assert.Equal(t, "Dana Black", updated.Name)
	assert.Equal(t, "dana.b@example.com", updated.Email)

	require.NoError(t, repo.DeleteUser(ctx, created.ID))
	require.ErrorIs(t, repo.DeleteUser(ctx, created.ID), domain.ErrUserNotFound)

	_, err = repo.GetUser(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestUserRepository_EmailTaken(t *testing.T) {
	repo := NewUserRepository(setupSeededDB(t))
	ctx := context.Background()

	taken, err := repo.EmailTaken(ctx, "JOHN@example.com", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	users, err := repo.ListUsers(ctx, nil)
	require.NoError(t, err)
	john := users[4]

	taken, err = repo.EmailTaken(ctx, "john@example.com", john.ID)
	require.NoError(t, err)
	assert.False(t, taken)

	taken, err = repo.EmailTaken(ctx, "nobody@example.com", 0)
	require.NoError(t, err)
	assert.False(t, taken)
}

func TestShopRepository_CRUD(t *testing.T) {
	repo := NewShopRepository(setupTestDB(t))
	ctx := context.Background()
	description := "Outdoor equipment"

	created, err := repo.CreateShop(ctx, domain.CatalogInput{Name: "Camp Supply", Description: &description})
	require.NoError(t, err)
	require.NotNil(t, created.Description)
	assert.Equal(t, description, *created.Description)

	updated, err := repo.UpdateShop(ctx, created.ID, domain.CatalogInput{Name: "Camp & Hike"})
	require.NoError(t, err)
	assert.Equal(t, "Camp & Hike", updated.Name)
	assert.Nil(t, updated.Description)

	taken, err := repo.ShopNameTaken(ctx, "camp & hike", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	require.NoError(t, repo.DeleteShop(ctx, created.ID))
	_, err = repo.GetShop(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrShopNotFound)
	require.ErrorIs(t, repo.DeleteShop(ctx, created.ID), domain.ErrShopNotFound)
}

func TestShopRepository_ListSample(t *testing.T) {
	repo := NewShopRepository(setupSeededDB(t))

	shops, err := repo.ListShops(context.Background(), nil)

	require.NoError(t, err)
	require.Len(t, shops, 5)
	assert.Equal(t, "Home Decor", shops[0].Name)
	require.NotNil(t, shops[4].Description)
	assert.Equal(t, "Electronics and gadgets for technology enthusiasts", *shops[4].Description)
}

func TestChannelRepository_CRUD(t *testing.T) {
	repo := NewChannelRepository(setupSeededDB(t))
	ctx := context.Background()

	channels, err := repo.ListChannels(ctx, &domain.Page{Number: 1, Limit: 3})
	require.NoError(t, err)
	require.Len(t, channels, 3)
	assert.Equal(t, "Food & Cooking", channels[0].Name)

	created, err := repo.CreateChannel(ctx, domain.CatalogInput{Name: "Music"})
	require.NoError(t, err)
	assert.Nil(t, created.Description)

	taken, err := repo.ChannelNameTaken(ctx, "GAMING", 0)
	require.NoError(t, err)
	assert.True(t, taken)

	_, err = repo.UpdateChannel(ctx, created.ID, domain.CatalogInput{Name: "Music Live"})
	require.NoError(t, err)

	got, err := repo.GetChannel(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Music Live", got.Name)

	require.NoError(t, repo.DeleteChannel(ctx, created.ID))
	_, err = repo.GetChannel(ctx, created.ID)
	require.ErrorIs(t, err, domain.ErrChannelNotFound)
}
