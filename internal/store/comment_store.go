package store

import (
	"fmt"
	"strings"

	"github.com/ElGunner79/fish-stories/internal/models"

	"gorm.io/gorm"
)

type CommentStore struct {
	db *gorm.DB
}

// Create inserts a comment after checking both the author and the target
// video exist. Empty content is rejected before touching the database.
func (s *CommentStore) Create(comment *models.Comment) error {
	if strings.TrimSpace(comment.Content) == "" {
		return fmt.Errorf("%w: content must not be empty", ErrValidation)
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		ok, err := exists(tx, &models.User{}, comment.UserID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: user %d does not exist", ErrForeignKey, comment.UserID)
		}

		ok, err = exists(tx, &models.Video{}, comment.VideoID)
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("%w: video %d does not exist", ErrForeignKey, comment.VideoID)
		}

		if err := tx.Create(comment).Error; err != nil {
			return classify(err)
		}
		return nil
	})
}

func (s *CommentStore) Get(id uint) (*models.Comment, error) {
	var comment models.Comment
	if err := s.db.First(&comment, id).Error; err != nil {
		return nil, classify(err)
	}
	return &comment, nil
}

// GetWithRelations loads the comment with its author and target video.
func (s *CommentStore) GetWithRelations(id uint) (*models.Comment, error) {
	var comment models.Comment
	err := s.db.
		Preload("User").
		Preload("Video").
		First(&comment, id).Error
	if err != nil {
		return nil, classify(err)
	}
	return &comment, nil
}

func (s *CommentStore) List() ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentStore) ListByVideo(videoID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Where("video_id = ?", videoID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentStore) ListByUser(userID uint) ([]models.Comment, error) {
	var comments []models.Comment
	if err := s.db.Where("user_id = ?", userID).Find(&comments).Error; err != nil {
		return nil, err
	}
	return comments, nil
}

func (s *CommentStore) Update(id uint, fields map[string]interface{}) (int64, error) {
	if len(fields) == 0 {
		return 0, nil
	}
	if content, ok := fields["content"].(string); ok && strings.TrimSpace(content) == "" {
		return 0, fmt.Errorf("%w: content must not be empty", ErrValidation)
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
		if videoID, present := fields["video_id"]; present {
			ok, err := exists(tx, &models.Video{}, toUint(videoID))
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: video %v does not exist", ErrForeignKey, videoID)
			}
		}

		result := tx.Model(&models.Comment{}).Where("id = ?", id).Updates(fields)
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

func (s *CommentStore) Delete(id uint) (int64, error) {
	result := s.db.Delete(&models.Comment{}, id)
	if result.Error != nil {
		return 0, classify(result.Error)
	}
	return result.RowsAffected, nil
}
