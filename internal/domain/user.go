package domain

import "context"

type UserRole string

const (
	RoleCustomer UserRole = "customer"
	RoleWorker   UserRole = "worker"
)

func (r UserRole) Valid() bool {
	return r == RoleCustomer || r == RoleWorker
}

type User struct {
	ID             int64    `gorm:"primaryKey" json:"id"`
	Username       string   `gorm:"size:255;not null;uniqueIndex" json:"username"`
	FirstName      string   `gorm:"size:255" json:"first_name"`
	Role           UserRole `gorm:"type:varchar(32)" json:"role"`
	StoreID        *int64   `gorm:"index" json:"store_id"`
	HashedPassword *string  `gorm:"size:300" json:"-"`
	IsDeleted      bool     `gorm:"not null;default:false" json:"-"`
}

func (User) TableName() string { return "users" }

// BelongsTo reports whether the user is affiliated with the given store.
func (u *User) BelongsTo(storeID int64) bool {
	return u.StoreID != nil && *u.StoreID == storeID
}

type UserFilter struct {
	FirstName string `form:"first_name"`
	Username  string `form:"username"`
	Limit     int    `form:"limit"`
}

type UserRepository interface {
	Create(ctx context.Context, u *User) (*User, error)
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByUsername(ctx context.Context, username string) (*User, error)
	List(ctx context.Context, f UserFilter) ([]User, error)
	SoftDelete(ctx context.Context, id int64) error
}
