package store

import (
	"fmt"

	"github.com/ElGunner79/fish-stories/internal/models"

	"gorm.io/gorm"
)

type UserStore struct {
	db *gorm.DB
}

// Create inserts a new user. The email uniqueness check and the insert run in
// one transaction so a half-applied create is never observable.
func (s *UserStore) Create(user *models.User) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.User{}).Where("email = ?", user.Email).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return fmt.Errorf("%w: email %q already registered", ErrUnique, user.Email)
		}

		if err := tx.Create(user).Error; err != nil {
			return classify(err)
		}
		return nil
	})
}

func (s *UserStore) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

// GetWithRelations loads the user with its direct children (videos, comments,
// likes), one hop only.
func (s *UserStore) GetWithRelations(id uint) (*models.User, error) {
	var user models.User
	err := s.db.
		Preload("Videos").
		Preload("Comments").
		Preload("Likes").
		First(&user, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (s *UserStore) GetByEmail(email string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		return nil, classify(err)
	}
	return &user, nil
}

func (s *UserStore) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// Update applies only the supplied fields. A missing id is (0, nil), not an
// error; a duplicate email surfaces as ErrUnique.
func (s *UserStore) Update(id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	if email, ok := fields["email"].(string); ok {
		var count int64
		err := s.db.Model(&models.User{}).Where("email = ? AND id <> ?", email, id).Count(&count).Error
		if err != nil {
			return 0, err
		}
		if count > 0 {
			return 0, fmt.Errorf("%w: email %q already registered", ErrUnique, email)
		}
	}

	result := s.db.Model(&models.User{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return 0, classify(result.Error)
	}
	return result.RowsAffected, nil
}

// Delete removes a user. Users owning videos, comments or likes cannot be
// deleted; there is no cascade.
func (s *UserStore) Delete(id uint) (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.Video{}, &models.Comment{}, &models.Like{}} {
			var count int64
			if err := tx.Model(child).Where("user_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w: user %d still has dependent rows", ErrForeignKey, id)
			}
		}

		result := tx.Delete(&models.User{}, id)
		if result.Error != nil {
			return classify(result.Error)
		}
		deleted = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return deleted, nil
}
