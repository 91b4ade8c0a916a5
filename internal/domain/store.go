package domain

import "context"

type Store struct {
	ID        int64  `gorm:"primaryKey" json:"id"`
	Title     string `gorm:"size:255;not null" json:"title"`
	IsDeleted bool   `gorm:"not null;default:false" json:"-"`

	Users []User `gorm:"foreignKey:StoreID" json:"-"`
}

func (Store) TableName() string { return "stores" }

// HasWorker reports whether the given user id is among the store's members.
// Users must have been loaded together with the store.
func (s *Store) HasWorker(userID int64) bool {
	for _, u := range s.Users {
		if u.ID == userID {
			return true
		}
	}
	return false
}

type StoreFilter struct {
	ID    *int64 `form:"id"`
	Title string `form:"title"`
	Limit int    `form:"limit"`
}

type StoreRepository interface {
	// GetByID loads the store together with its member users.
	GetByID(ctx context.Context, id int64) (*Store, error)
	List(ctx context.Context, f StoreFilter) ([]Store, error)
}
