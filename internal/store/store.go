package store

import (
	"gorm.io/gorm"
)

// Store bundles the per-entity stores. It is the single dependency the HTTP
// layer takes for data access.
type Store struct {
	Users    *UserStore
	Videos   *VideoStore
	Comments *CommentStore
	Likes    *LikeStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		Users:    &UserStore{db: db},
		Videos:   &VideoStore{db: db},
		Comments: &CommentStore{db: db},
		Likes:    &LikeStore{db: db},
	}
}

func exists(tx *gorm.DB, model interface{}, id uint) (bool, error) {
	var count int64
	if err := tx.Model(model).Where("id = ?", id).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// toUint normalizes the numeric types a partial-update map may carry for a
// foreign key field (JSON decodes numbers as float64).
func toUint(v interface{}) uint {
	switch n := v.(type) {
	case uint:
		return n
	case int:
		return uint(n)
	case int64:
		return uint(n)
	case float64:
		return uint(n)
	}
	return 0
}
