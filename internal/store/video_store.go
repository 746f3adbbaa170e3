package store

import (
	"fmt"

	"github.com/ElGunner79/fish-stories/internal/models"

	"gorm.io/gorm"
)

type VideoStore struct {
	db *gorm.DB
}

// Create inserts a new video after checking the owning user exists. Check and
// insert share a transaction.
func (s *VideoStore) Create(video *models.Video) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.User{}, video.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: user %d does not exist", ErrForeignKey, video.UserID)
		}

		if err := tx.Create(video).Error; err != nil {
			return classify(err)
		}
		return nil
	})
}

func (s *VideoStore) Get(id uint) (*models.Video, error) {
	var video models.Video
	if err := s.db.First(&video, id).Error; err != nil {
		return nil, classify(err)
	}
	return &video, nil
}

// GetWithRelations loads the video with its owner and its direct children.
func (s *VideoStore) GetWithRelations(id uint) (*models.Video, error) {
	var video models.Video
	err := s.db.
		Preload("User").
		Preload("Comments").
		Preload("Likes").
		First(&video, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &video, nil
}

func (s *VideoStore) List() ([]models.Video, error) {
	var videos []models.Video
	if err := s.db.Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func (s *VideoStore) ListByUser(userID uint) ([]models.Video, error) {
	var videos []models.Video
	if err := s.db.Where("user_id = ?", userID).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

// Update applies only the supplied fields and refreshes updated_at. A missing
// id is (0, nil). Re-assigning user_id must reference an existing user.
func (s *VideoStore) Update(id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}

	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if userID, present := fields["user_id"]; present {
			ok, err := exists(tx, &models.User{}, toUint(userID))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: user %v does not exist", ErrForeignKey, userID)
			}
		}

		result := tx.Model(&models.Video{}).Where("id = ?", id).Updates(fields)
		if result.Error != nil {
			return classify(result.Error)
		}
		affected = result.RowsAffected
		return nil
	})
	if err != nil {
		return 0, err
	}
	return affected, nil
}

// Delete removes a video unless comments or likes still reference it.
func (s *VideoStore) Delete(id uint) (int64, error) {
	var deleted int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{&models.Comment{}, &models.Like{}} {
			var count int64
			if err := tx.Model(child).Where("video_id = ?", id).Count(&count).Error; err != nil {
				return err
			}
			if count > 0 {
				return fmt.Errorf("%w: video %d still has dependent rows", ErrForeignKey, id)
			}
		}

		result := tx.Delete(&models.Video{}, id)
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
