package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"store-visit/internal/domain"
)

type StoreRepo struct{ db *gorm.DB }

func NewStoreRepo(db *gorm.DB) *StoreRepo { return &StoreRepo{db: db} }

func (r *StoreRepo) GetByID(ctx context.Context, id int64) (*domain.Store, error) {
	var s domain.Store
	err := r.db.WithContext(ctx).
		Scopes(notDeleted).
		Preload("Users", "is_deleted = ?", false).
		First(&s, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound("store", id)
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *StoreRepo) List(ctx context.Context, f domain.StoreFilter) ([]domain.Store, error) {
	q := r.db.WithContext(ctx).Model(&domain.Store{}).Scopes(notDeleted)
	if f.ID != nil {
		q = q.Where("id = ?", *f.ID)
	}
	if f.Title != "" {
		q = q.Where("title LIKE ?", "%"+f.Title+"%")
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var stores []domain.Store
	if err := q.Order("id DESC").Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}
