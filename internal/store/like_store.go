package store

import (
	"fmt"

	"github.com/ElGunner79/fish-stories/internal/models"

	"gorm.io/gorm"
)

type LikeStore struct {
	db *gorm.DB
}

// Create inserts a like after checking both referenced rows exist. Duplicate
// likes by the same user on the same video are allowed (see models.Like).
func (s *LikeStore) Create(like *models.Like) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.User{}, like.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: user %d does not exist", ErrForeignKey, like.UserID)
		}

		ok, err = exists(tx, &models.Video{}, like.VideoID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: video %d does not exist", ErrForeignKey, like.VideoID)
		}

		if err := tx.Create(like).Error; err != nil {
			return classify(err)
		}
		return nil
	})
}

func (s *LikeStore) Get(id uint) (*models.Like, error) {
	var like models.Like
	if err := s.db.First(&like, id).Error; err != nil {
		return nil, classify(err)
	}
	return &like, nil
}

func (s *LikeStore) GetWithRelations(id uint) (*models.Like, error) {
	var like models.Like
	err := s.db.
		Preload("User").
		Preload("Video").
		First(&like, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &like, nil
}

func (s *LikeStore) List() ([]models.Like, error) {
	var likes []models.Like
	if err := s.db.Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (s *LikeStore) ListByVideo(videoID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := s.db.Where("video_id = ?", videoID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

func (s *LikeStore) ListByUser(userID uint) ([]models.Like, error) {
	var likes []models.Like
	if err := s.db.Where("user_id = ?", userID).Find(&likes).Error; err != nil {
		return nil, err
	}
	return likes, nil
}

// Update exists for API completeness; re-pointing a like must still satisfy
// the foreign keys.
func (s *LikeStore) Update(id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}

	var affected int64
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if userID, ok := fields["user_id"]; ok {
			ok, err := exists(tx, &models.User{}, toUint(userID))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: user %v does not exist", ErrForeignKey, userID)
			}
		}
		if videoID, ok := fields["video_id"]; ok {
			ok, err := exists(tx, &models.Video{}, toUint(videoID))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: video %v does not exist", ErrForeignKey, videoID)
			}
		}

		result := tx.Model(&models.Like{}).Where("id = ?", id).Updates(fields)
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

func (s *LikeStore) Delete(id uint) (int64, error) {
	result := s.db.Delete(&models.Like{}, id)
	if result.Error != nil {
		return 0, classify(result.Error)
	}
	return result.RowsAffected, nil
}
