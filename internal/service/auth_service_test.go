package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"store-visit/internal/core/auth"
	"store-visit/internal/domain"
	"store-visit/pkg/utils"
)

func testTokens() *auth.Tokens {
	return &auth.Tokens{
		AccessSecret:  []byte("access-secret"),
		RefreshSecret: []byte("refresh-secret"),
		Issuer:        "test",
		AccessTTL:     time.Minute,
		RefreshTTL:    time.Hour,
	}
}

func TestLogin_Success(t *testing.T) {
	e := newEnv(t)
	tokens := testTokens()
	svc := NewAuthService(e.users, tokens)

	hash := utils.HashPassword("s3cret")
	u := e.user(t, "alice", domain.RoleCustomer, nil)
	require.NoError(t, e.db.Model(&domain.User{}).Where("id = ?", u.ID).Update("hashed_password", hash).Error)

	pair, err := svc.Login(ctx(), "alice", "s3cret", "phone-1")
	require.NoError(t, err)
	assert.Equal(t, "bearer", pair.TokenType)

	claims, err := tokens.ParseAccess(pair.AccessToken)
	require.NoError(t, err)
	id, err := claims.UserID()
	require.NoError(t, err)
	assert.Equal(t, u.ID, id)
	assert.Equal(t, "phone-1", claims.Dev)

	_, err = tokens.ParseRefresh(pair.RefreshToken)
	assert.NoError(t, err)
}

func TestLogin_WrongPassword(t *testing.T) {
	e := newEnv(t)
	svc := NewAuthService(e.users, testTokens())

	hash := utils.HashPassword("s3cret")
	u := e.user(t, "alice", domain.RoleCustomer, nil)
	require.NoError(t, e.db.Model(&domain.User{}).Where("id = ?", u.ID).Update("hashed_password", hash).Error)

	_, err := svc.Login(ctx(), "alice", "wrong", "")
	assert.True(t, domain.IsKind(err, domain.KindAuthentication))
}

func TestLogin_NoStoredPassword(t *testing.T) {
	e := newEnv(t)
	svc := NewAuthService(e.users, testTokens())

	e.user(t, "bob", domain.RoleWorker, nil)

	_, err := svc.Login(ctx(), "bob", "anything", "")
	assert.True(t, domain.IsKind(err, domain.KindAuthentication))
}

func TestLogin_UnknownUser(t *testing.T) {
	e := newEnv(t)
	svc := NewAuthService(e.users, testTokens())

	_, err := svc.Login(ctx(), "nobody", "pw", "")
	assert.True(t, domain.IsNotFound(err))
}
