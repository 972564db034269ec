package store

import (
	"context"
	"strings"
	"testing"

	"github.com/MKhiriev/go-accounts-service/internal/config"
	"github.com/MKhiriev/go-accounts-service/internal/logger"
	"github.com/MKhiriev/go-accounts-service/migrations"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSQLiteStorages(t *testing.T) *Storages {
	t.Helper()

	s, err := NewStorages(context.Background(), config.DB{
		DSN:    ":memory:",
		Driver: migrations.DriverSQLite,
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return s
}

func TestNewDB_UnsupportedDriverWithDSN(t *testing.T) {
	_, err := NewDB(context.Background(), config.DB{DSN: "x", Driver: "mysql"}, logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDriver)
}

func TestIsInMemorySQLite(t *testing.T) {
	assert.True(t, isInMemorySQLite(":memory:"))
	assert.True(t, isInMemorySQLite("file:test?mode=memory&cache=shared"))
	assert.True(t, isInMemorySQLite(""))
	assert.False(t, isInMemorySQLite("file:accounts.db"))
}

func TestStorages_CloseNil(t *testing.T) {
	var s *Storages
	assert.NoError(t, s.Close())
}

func TestSQLite_AccountLifecycle(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteStorages(t).AccountRepository

	accounts, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, accounts)

	created, err := repo.Create(ctx, testAccount(t))
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.Equal(t, "2024-01-02", created.DateJoined.String())

	second, err := repo.Create(ctx, testAccount(t))
	require.NoError(t, err)
	assert.Greater(t, second.ID, created.ID)

	found, err := repo.FindByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, found)

	found.Name = "Jane Doe"
	found.Address = "2 Side St"
	updated, err := repo.Update(ctx, found)
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", updated.Name)
	assert.Equal(t, "2 Side St", updated.Address)
	assert.Equal(t, created.Email, updated.Email)

	accounts, err = repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, created.ID, accounts[0].ID)
	assert.Equal(t, second.ID, accounts[1].ID)

	deleted, err := repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.Delete(ctx, created.ID)
	require.NoError(t, err)
	assert.False(t, deleted)

	_, err = repo.FindByID(ctx, created.ID)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestSQLite_UpdateMissing(t *testing.T) {
	account := testAccount(t)
	account.ID = 12345

	_, err := newSQLiteStorages(t).AccountRepository.Update(context.Background(), account)
	assert.ErrorIs(t, err, ErrAccountNotFound)
}

func TestSQLite_CheckConstraint(t *testing.T) {
	account := testAccount(t)
	account.Name = strings.Repeat("x", 65)

	_, err := newSQLiteStorages(t).AccountRepository.Create(context.Background(), account)
	assert.ErrorIs(t, err, ErrConstraintViolation)
}
