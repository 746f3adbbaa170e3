package store

import (
	"testing"

	"github.com/ElGunner79/fish-stories/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupTestStore(t *testing.T) (*Store, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Video{}, &models.Comment{}, &models.Like{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return New(db), db
}

func seedUser(t *testing.T, s *Store, email string) *models.User {
	t.Helper()

	user := &models.User{
		Name:     "Test",
		Surname:  "User",
		Email:    email,
		Password: "$2a$10$notarealhashnotarealhashnotarealhash",
	}
	if err := s.Users.Create(user); err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedVideo(t *testing.T, s *Store, userID uint) *models.Video {
	t.Helper()

	video := &models.Video{
		UserID:      userID,
		Title:       "Test Video",
		Description: "A test video",
		Location:    "uploads/test.mp4",
	}
	if err := s.Videos.Create(video); err != nil {
		t.Fatalf("failed to seed video: %v", err)
	}
	return video
}
