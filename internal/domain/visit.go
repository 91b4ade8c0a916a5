package domain

import (
	"context"
	"time"
)

type Visit struct {
	ID         int64     `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time `gorm:"autoCreateTime;not null" json:"created_at"`
	WorkerID   int64     `gorm:"not null" json:"worker_id"`
	OrderID    int64     `gorm:"not null;uniqueIndex" json:"order_id"`
	CustomerID int64     `gorm:"not null" json:"customer_id"`
	StoreID    int64     `gorm:"not null" json:"store_id"`
	IsDeleted  bool      `gorm:"not null;default:false" json:"-"`
}

func (Visit) TableName() string { return "visits" }

type VisitFilter struct {
	OrderID *int64 `form:"order_id"`
	Limit   int    `form:"limit"`
}

type VisitRepository interface {
	Create(ctx context.Context, v *Visit) (*Visit, error)
	// GetByOrderID returns nil when no active visit exists for the order.
	GetByOrderID(ctx context.Context, orderID int64) (*Visit, error)
	List(ctx context.Context, f VisitFilter) ([]Visit, error)
	SoftDelete(ctx context.Context, id int64) error
}
