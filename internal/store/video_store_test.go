package store

import (
	"testing"
	"time"

	"github.com/ElGunner79/fish-stories/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestVideoStore_Create(t *testing.T) {
	s, _ := setupTestStore(t)
	user := seedUser(t, s, "a@x.com")

	video := seedVideo(t, s, user.ID)
	assert.NotZero(t, video.ID)

	t.Run("Orphan user is rejected", func(t *testing.T) {
		orphan := &models.Video{UserID: 999, Title: "t", Description: "d", Location: "l"}
		err := s.Videos.Create(orphan)
		assert.ErrorIs(t, err, ErrForeignKey)
	})
}

func TestVideoStore_ListByUser(t *testing.T) {
	s, _ := setupTestStore(t)
	owner := seedUser(t, s, "a@x.com")
	other := seedUser(t, s, "b@x.com")
	seedVideo(t, s, owner.ID)
	seedVideo(t, s, owner.ID)
	seedVideo(t, s, other.ID)

	videos, err := s.Videos.ListByUser(owner.ID)
	assert.NoError(t, err)
	assert.Len(t, videos, 2)

	all, err := s.Videos.List()
	assert.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestVideoStore_PartialUpdate(t *testing.T) {
	s, _ := setupTestStore(t)
	user := seedUser(t, s, "a@x.com")
	video := seedVideo(t, s, user.ID)

	before, _ := s.Videos.Get(video.ID)
	time.Sleep(10 * time.Millisecond)

	affected, err := s.Videos.Update(video.ID, map[string]interface{}{"title": "X"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	after, _ := s.Videos.Get(video.ID)
	assert.Equal(t, "X", after.Title)
	assert.Equal(t, before.Description, after.Description)
	assert.Equal(t, before.Location, after.Location)
	assert.True(t, after.UpdatedAt.After(before.UpdatedAt), "updated_at should advance")

	t.Run("Missing id is zero rows", func(t *testing.T) {
		affected, err := s.Videos.Update(999, map[string]interface{}{"title": "X"})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("Re-assigning to missing user is rejected", func(t *testing.T) {
		_, err := s.Videos.Update(video.ID, map[string]interface{}{"user_id": 999})
		assert.ErrorIs(t, err, ErrForeignKey)
	})
}

func TestVideoStore_Delete(t *testing.T) {
	s, _ := setupTestStore(t)
	user := seedUser(t, s, "a@x.com")

	t.Run("With comments is rejected", func(t *testing.T) {
		video := seedVideo(t, s, user.ID)
		comment := &models.Comment{UserID: user.ID, VideoID: video.ID, Content: "hi"}
		assert.NoError(t, s.Comments.Create(comment))

		_, err := s.Videos.Delete(video.ID)
		assert.ErrorIs(t, err, ErrForeignKey)
	})

	t.Run("Without dependents succeeds", func(t *testing.T) {
		video := seedVideo(t, s, user.ID)

		deleted, err := s.Videos.Delete(video.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		_, err = s.Videos.Get(video.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestVideoStore_GetWithRelations(t *testing.T) {
	s, _ := setupTestStore(t)
	user := seedUser(t, s, "a@x.com")
	video := seedVideo(t, s, user.ID)

	comment := &models.Comment{UserID: user.ID, VideoID: video.ID, Content: "hi"}
	assert.NoError(t, s.Comments.Create(comment))

	got, err := s.Videos.GetWithRelations(video.ID)
	assert.NoError(t, err)
	assert.NotNil(t, got.User)
	assert.Equal(t, "a@x.com", got.User.Email)
	assert.Len(t, got.Comments, 1)
	assert.Empty(t, got.Likes)
}
