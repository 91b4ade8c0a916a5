package repo

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"store-visit/internal/domain"
)

type OrderRepo struct{ db *gorm.DB }

func NewOrderRepo(db *gorm.DB) *OrderRepo { return &OrderRepo{db: db} }

func (r *OrderRepo) Create(ctx context.Context, o *domain.Order) (*domain.Order, error) {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(o).Error; err != nil {
			return err
		}
		return tx.First(o, "id = ?", o.ID).Error
	})
	if err != nil {
		if isFKViolation(err) {
			return nil, domain.NewError(domain.KindNotFound, "referenced store or user not found")
		}
		return nil, err
	}
	return o, nil
}

func (r *OrderRepo) GetByID(ctx context.Context, id int64) (*domain.Order, error) {
	var o domain.Order
	err := r.db.WithContext(ctx).Scopes(notDeleted).First(&o, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, domain.ErrNotFound("order", id)
	}
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// roleScope selects the listing predicate for the acting user: customers
// see orders they created, workers see orders assigned to them.
func roleScope(actor *domain.User) func(*gorm.DB) *gorm.DB {
	switch actor.Role {
	case domain.RoleWorker:
		return func(q *gorm.DB) *gorm.DB { return q.Where("worker_id = ?", actor.ID) }
	default:
		return func(q *gorm.DB) *gorm.DB { return q.Where("customer_id = ?", actor.ID) }
	}
}

func (r *OrderRepo) List(ctx context.Context, f domain.OrderFilter, actor *domain.User) ([]domain.Order, error) {
	q := r.db.WithContext(ctx).Model(&domain.Order{}).
		Scopes(notDeleted, roleScope(actor))
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit)
	}
	var orders []domain.Order
	if err := q.Order("id DESC").Find(&orders).Error; err != nil {
		return nil, err
	}
	return orders, nil
}

func (r *OrderRepo) Update(ctx context.Context, id int64, p domain.OrderPatch) (*domain.Order, error) {
	var out domain.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var o domain.Order
		if err := tx.Scopes(notDeleted).First(&o, "id = ?", id).Error; err != nil {
			return err
		}
		updates := map[string]any{}
		if p.ExpiresAt != nil {
			updates["expires_at"] = *p.ExpiresAt
		}
		if p.StoreID != nil {
			updates["store_id"] = *p.StoreID
		}
		if p.WorkerID != nil {
			updates["worker_id"] = *p.WorkerID
		}
		if p.Status != nil {
			updates["status"] = *p.Status
		}
		if err := tx.Model(&o).Updates(updates).Error; err != nil {
			return err
		}
		return tx.Scopes(notDeleted).First(&out, "id = ?", id).Error
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound("order", id)
		}
		if isFKViolation(err) {
			return nil, domain.NewError(domain.KindNotFound, "referenced store or user not found")
		}
		return nil, err
	}
	return &out, nil
}

func (r *OrderRepo) SoftDelete(ctx context.Context, id int64) error {
	res := r.db.WithContext(ctx).Model(&domain.Order{}).
		Scopes(notDeleted).
		Where("id = ?", id).
		Update("is_deleted", true)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound("order", id)
	}
	return nil
}
