package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"store-visit/internal/core/database"
	"store-visit/internal/domain"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.NewGorm(database.Opts{
		Driver:       "sqlite",
		DSN:          "file::memory:?_pragma=foreign_keys(1)",
		MaxOpenConns: 1,
		MaxIdleConns: 1,
		LogLevel:     "silent",
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&domain.Store{}, &domain.User{}, &domain.Order{}, &domain.Visit{}))
	return db
}

func seedStore(t *testing.T, db *gorm.DB, title string) *domain.Store {
	t.Helper()
	s := &domain.Store{Title: title}
	require.NoError(t, db.Create(s).Error)
	return s
}

func seedUser(t *testing.T, db *gorm.DB, username string, role domain.UserRole, storeID *int64) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, FirstName: username, Role: role, StoreID: storeID}
	require.NoError(t, db.Create(u).Error)
	return u
}

func ctx() context.Context { return context.Background() }
