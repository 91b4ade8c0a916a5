package service

import (
	"context"

	"store-visit/internal/domain"
	"store-visit/pkg/utils"
)

// CRMService provisions and lists users for the back office.
type CRMService struct {
	users domain.UserRepository
}

func NewCRMService(users domain.UserRepository) *CRMService {
	return &CRMService{users: users}
}

func (s *CRMService) CreateUser(ctx context.Context, draft *domain.User, password string) (*domain.User, error) {
	hash := utils.HashPassword(password)
	draft.HashedPassword = &hash
	return s.users.Create(ctx, draft)
}

func (s *CRMService) GetUsers(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	return s.users.List(ctx, f)
}
