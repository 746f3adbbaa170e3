package store

import (
	"testing"

	"github.com/ElGunner79/fish-stories/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUserStore_CreateAndGet(t *testing.T) {
	s, _ := setupTestStore(t)

	user := seedUser(t, s, "a@x.com")
	assert.NotZero(t, user.ID)

	got, err := s.Users.Get(user.ID)
	assert.NoError(t, err)
	assert.Equal(t, "a@x.com", got.Email)
}

func TestUserStore_DuplicateEmail(t *testing.T) {
	s, _ := setupTestStore(t)
	seedUser(t, s, "a@x.com")

	dup := &models.User{Name: "Other", Surname: "User", Email: "a@x.com", Password: "hash"}
	err := s.Users.Create(dup)
	assert.ErrorIs(t, err, ErrUnique)
}

func TestUserStore_GetNotFound(t *testing.T) {
	s, _ := setupTestStore(t)

	_, err := s.Users.Get(999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_GetByEmail(t *testing.T) {
	s, _ := setupTestStore(t)
	seedUser(t, s, "a@x.com")

	got, err := s.Users.GetByEmail("a@x.com")
	assert.NoError(t, err)
	assert.Equal(t, "Test", got.Name)

	_, err = s.Users.GetByEmail("missing@x.com")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUserStore_GetWithRelations(t *testing.T) {
	s, _ := setupTestStore(t)
	user := seedUser(t, s, "a@x.com")
	video := seedVideo(t, s, user.ID)

	comment := &models.Comment{UserID: user.ID, VideoID: video.ID, Content: "nice"}
	assert.NoError(t, s.Comments.Create(comment))
	like := &models.Like{UserID: user.ID, VideoID: video.ID}
	assert.NoError(t, s.Likes.Create(like))

	got, err := s.Users.GetWithRelations(user.ID)
	assert.NoError(t, err)
	assert.Len(t, got.Videos, 1)
	assert.Len(t, got.Comments, 1)
	assert.Len(t, got.Likes, 1)
}

func TestUserStore_Update(t *testing.T) {
	s, _ := setupTestStore(t)
	user := seedUser(t, s, "a@x.com")

	affected, err := s.Users.Update(user.ID, map[string]interface{}{"name": "Renamed"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	got, _ := s.Users.Get(user.ID)
	assert.Equal(t, "Renamed", got.Name)
	assert.Equal(t, "User", got.Surname) // untouched fields stay

	t.Run("Missing id is zero rows, not an error", func(t *testing.T) {
		affected, err := s.Users.Update(999, map[string]interface{}{"name": "Nobody"})
		assert.NoError(t, err)
		assert.Equal(t, int64(0), affected)
	})

	t.Run("Email collision", func(t *testing.T) {
		other := seedUser(t, s, "b@x.com")
		_, err := s.Users.Update(other.ID, map[string]interface{}{"email": "a@x.com"})
		assert.ErrorIs(t, err, ErrUnique)
	})
}

func TestUserStore_Delete(t *testing.T) {
	s, _ := setupTestStore(t)

	t.Run("With dependents is rejected", func(t *testing.T) {
		user := seedUser(t, s, "owner@x.com")
		seedVideo(t, s, user.ID)

		_, err := s.Users.Delete(user.ID)
		assert.ErrorIs(t, err, ErrForeignKey)

		// still there
		_, err = s.Users.Get(user.ID)
		assert.NoError(t, err)
	})

	t.Run("Without dependents succeeds", func(t *testing.T) {
		user := seedUser(t, s, "loner@x.com")

		deleted, err := s.Users.Delete(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), deleted)

		_, err = s.Users.Get(user.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Missing id deletes zero rows", func(t *testing.T) {
		deleted, err := s.Users.Delete(999)
		assert.NoError(t, err)
		assert.Equal(t, int64(0), deleted)
	})
}
