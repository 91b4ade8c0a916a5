package domain

import (
	"context"
	"time"
)

type OrderStatus string

const (
	OrderStarted   OrderStatus = "started"
	OrderEnded     OrderStatus = "ended"
	OrderInProcess OrderStatus = "in_process"
	OrderAwaiting  OrderStatus = "awaiting"
	OrderCanceled  OrderStatus = "canceled"
)

func (s OrderStatus) Valid() bool {
	switch s {
	case OrderStarted, OrderEnded, OrderInProcess, OrderAwaiting, OrderCanceled:
		return true
	}
	return false
}

type Order struct {
	ID         int64       `gorm:"primaryKey" json:"id"`
	CreatedAt  time.Time   `gorm:"autoCreateTime;not null" json:"created_at"`
	ExpiresAt  time.Time   `json:"expires_at"`
	StoreID    int64       `gorm:"not null" json:"store_id"`
	CustomerID int64       `gorm:"not null" json:"customer_id"`
	Status     OrderStatus `gorm:"type:varchar(32);not null;default:started" json:"status"`
	WorkerID   int64       `gorm:"not null" json:"worker_id"`
	IsDeleted  bool        `gorm:"not null;default:false" json:"-"`
}

func (Order) TableName() string { return "orders" }

type OrderFilter struct {
	Status OrderStatus `form:"status"`
	// MyOrder is accepted on the wire for client compatibility; listing
	// scope is role-based regardless of its value.
	MyOrder bool `form:"my_order"`
	Limit   int  `form:"limit"`
}

// OrderPatch carries the updatable order fields; nil means "leave as is".
// ID and CreatedAt are immutable and have no slot here.
type OrderPatch struct {
	ExpiresAt *time.Time   `json:"expires_at"`
	StoreID   *int64       `json:"store_id"`
	WorkerID  *int64       `json:"worker_id"`
	Status    *OrderStatus `json:"status"`
}

func (p OrderPatch) Empty() bool {
	return p.ExpiresAt == nil && p.StoreID == nil && p.WorkerID == nil && p.Status == nil
}

type OrderRepository interface {
	Create(ctx context.Context, o *Order) (*Order, error)
	GetByID(ctx context.Context, id int64) (*Order, error)
	// List returns the acting user's orders: a customer sees orders they
	// created, a worker sees orders assigned to them.
	List(ctx context.Context, f OrderFilter, actor *User) ([]Order, error)
	Update(ctx context.Context, id int64, p OrderPatch) (*Order, error)
	SoftDelete(ctx context.Context, id int64) error
}
