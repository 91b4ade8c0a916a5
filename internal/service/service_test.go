package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"store-visit/internal/core/database"
	"store-visit/internal/domain"
	"store-visit/internal/repo"
)

type env struct {
	db     *gorm.DB
	orders *OrderService
	users  *repo.UserRepo
}

func newEnv(t *testing.T) *env {
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
	return &env{
		db:     db,
		orders: NewOrderService(repo.NewOrderRepo(db), repo.NewStoreRepo(db), repo.NewVisitRepo(db)),
		users:  repo.NewUserRepo(db),
	}
}

func (e *env) store(t *testing.T, title string) *domain.Store {
	t.Helper()
	s := &domain.Store{Title: title}
	require.NoError(t, e.db.Create(s).Error)
	return s
}

func (e *env) user(t *testing.T, username string, role domain.UserRole, storeID *int64) *domain.User {
	t.Helper()
	u := &domain.User{Username: username, FirstName: username, Role: role, StoreID: storeID}
	require.NoError(t, e.db.Create(u).Error)
	return u
}

func ctx() context.Context { return context.Background() }
