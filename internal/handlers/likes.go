package handlers

import (
	"net/http"

	"github.com/ElGunner79/fish-stories/internal/models"

	"github.com/gin-gonic/gin"
)

type CreateLikeRequest struct {
	UserID  uint `json:"user_id" binding:"required"`
	VideoID uint `json:"video_id" binding:"required"`
}

type UpdateLikeRequest struct {
	UserID  *uint `json:"user_id"`
	VideoID *uint `json:"video_id"`
}

func (h *Handler) ListLikes(c *gin.Context) {
	likes, err := h.store.Likes.List()
	if err != nil {
		h.respondStoreError(c, err, "Like not found")
		return
	}
	respondData(c, likes)
}

func (h *Handler) GetLike(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	like, err := h.store.Likes.Get(id)
	if err != nil {
		h.respondStoreError(c, err, "Like not found")
		return
	}
	respondData(c, like)
}

func (h *Handler) GetLikeInclude(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	like, err := h.store.Likes.GetWithRelations(id)
	if err != nil {
		h.respondStoreError(c, err, "Like not found")
		return
	}
	respondData(c, like)
}

func (h *Handler) ListLikesByVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	likes, err := h.store.Likes.ListByVideo(id)
	if err != nil {
		h.respondStoreError(c, err, "Like not found")
		return
	}
	respondData(c, likes)
}

func (h *Handler) ListLikesByUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	likes, err := h.store.Likes.ListByUser(id)
	if err != nil {
		h.respondStoreError(c, err, "Like not found")
		return
	}
	respondData(c, likes)
}

func (h *Handler) CreateLike(c *gin.Context) {
	var req CreateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err, "body")
		return
	}

	like := models.Like{
		UserID:  req.UserID,
		VideoID: req.VideoID,
	}
	if err := h.store.Likes.Create(&like); err != nil {
		h.respondStoreError(c, err, "Like not found")
		return
	}

	respondData(c, like)
}

func (h *Handler) UpdateLike(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateLikeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err, "body")
		return
	}

	fields := map[string]interface{}{}
	if req.UserID != nil {
		fields["user_id"] = *req.UserID
	}
	if req.VideoID != nil {
		fields["video_id"] = *req.VideoID
	}

	affected, err := h.store.Likes.Update(id, fields)
	if err != nil {
		h.respondStoreError(c, err, "Like not found")
		return
	}
	if affected == 0 {
		respondMessage(c, http.StatusNotFound, "Like not found")
		return
	}
	respondData(c, affected)
}

func (h *Handler) DeleteLike(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.store.Likes.Delete(id)
	if err != nil {
		h.respondStoreError(c, err, "Like not found")
		return
	}
	if deleted == 0 {
		respondMessage(c, http.StatusNotFound, "Like not found")
		return
	}
	respondData(c, deleted)
}
