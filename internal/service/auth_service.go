package service

import (
	"context"

	"store-visit/internal/core/auth"
	"store-visit/internal/domain"
	"store-visit/pkg/utils"
)

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
}

type AuthService struct {
	users  domain.UserRepository
	tokens *auth.Tokens
}

func NewAuthService(users domain.UserRepository, tokens *auth.Tokens) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Login verifies the credentials and mints an access/refresh token pair
// bound to the user id. deviceID is optional and lands in the dev claim.
func (s *AuthService) Login(ctx context.Context, username, password, deviceID string) (*TokenPair, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPassword(password, u.HashedPassword) {
		return nil, domain.NewError(domain.KindAuthentication, "wrong password")
	}

	access, err := s.tokens.IssueAccess(u.ID, deviceID)
	if err != nil {
		return nil, err
	}
	refresh, err := s.tokens.IssueRefresh(u.ID, deviceID)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: access, RefreshToken: refresh, TokenType: "bearer"}, nil
}
