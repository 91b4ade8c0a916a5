package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"store-visit/internal/domain"
)

type UserRepo struct{ db *gorm.DB }

func NewUserRepo(db *gorm.DB) *UserRepo { return &UserRepo{db: db} }

func (r *UserRepo) Create(ctx context.Context, u *domain.User) (*domain.User, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(u).Error; err != nil {
			return err
		}
		return tx.First(u, "id = ?", u.ID).Error
	})
	if err != nil {
		if isDupKey(err) {
			return nil, domain.ErrAlreadyExists("user", u.Username)
		}
		if isFKViolation(err) {
			return nil, domain.NewError(domain.KindNotFound, "referenced store not found")
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&u, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound("user", id)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	var u domain.User
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&u, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound("user", username)
	}
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepo) List(ctx context.Context, f domain.UserFilter) ([]domain.User, error) {
	q := r.db.WithContext(ctx).Model(&domain.User{}).Scopes(notDeleted)
	// first_name takes precedence when both filters are supplied
	switch {
	case f.FirstName != "":
		q = q.Where("first_name = ?", f.FirstName)
	case f.Username != "":
		q = q.Where("username = ?", f.Username)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var users []domain.User
	if err := q.Order("id DESC").Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *UserRepo) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&domain.User{}).
		Scopes(notDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound("user", id)
	}
	return nil
}
