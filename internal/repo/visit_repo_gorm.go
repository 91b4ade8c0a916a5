package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"store-visit/internal/domain"
)

type VisitRepo struct{ db *gorm.DB }

func NewVisitRepo(db *gorm.DB) *VisitRepo { return &VisitRepo{db: db} }

func (r *VisitRepo) Create(ctx context.Context, v *domain.Visit) (*domain.Visit, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(v).Error; err != nil {
			return err
		}
		return tx.First(v, "id = ?", v.ID).Error
	})
	if err != nil {
		// a concurrent creator may win the unique race on order_id
		if isDupKey(err) {
			return nil, domain.ErrAlreadyExists("visit", v.OrderID)
		}
		if isFKViolation(err) {
			return nil, domain.ErrNotFound("order", v.OrderID)
		}
		return nil, err
	}
	return v, nil
}

func (r *VisitRepo) GetByOrderID(ctx context.Context, orderID int64) (*domain.Visit, error) {
	var v domain.Visit
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&v, "order_id = ?", orderID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *VisitRepo) List(ctx context.Context, f domain.VisitFilter) ([]domain.Visit, error) {
	q := r.db.WithContext(ctx).Model(&domain.Visit{}).Scopes(notDeleted)
	if f.OrderID != nil {
		q = q.Where("order_id = ?", *f.OrderID)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var visits []domain.Visit
	if err := q.Order("id DESC").Find(&visits).Error; err != nil {
		return nil, err
	}
	return visits, nil
}

func (r *VisitRepo) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&domain.Visit{}).
		Scopes(notDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound("visit", id)
	}
	return nil
}
