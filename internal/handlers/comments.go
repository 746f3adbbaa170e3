package handlers

import (
	"net/http"

	"github.com/ElGunner79/fish-stories/internal/models"

	"github.com/gin-gonic/gin"
)

type CreateCommentRequest struct {
	UserID  uint   `json:"user_id" binding:"required"`
	VideoID uint   `json:"video_id" binding:"required"`
	Content string `json:"content" binding:"required"`
}

type UpdateCommentRequest struct {
	UserID  *uint   `json:"user_id"`
	VideoID *uint   `json:"video_id"`
	Content *string `json:"content"`
}

func (h *Handler) ListComments(c *gin.Context) {
	comments, err := h.store.Comments.List()
	if err != nil {
		h.respondStoreError(c, err, "Comment not found")
		return
	}
	respondData(c, comments)
}

func (h *Handler) GetComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comment, err := h.store.Comments.Get(id)
	if err != nil {
		h.respondStoreError(c, err, "Comment not found")
		return
	}
	respondData(c, comment)
}

func (h *Handler) GetCommentInclude(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comment, err := h.store.Comments.GetWithRelations(id)
	if err != nil {
		h.respondStoreError(c, err, "Comment not found")
		return
	}
	respondData(c, comment)
}

func (h *Handler) ListCommentsByVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comments, err := h.store.Comments.ListByVideo(id)
	if err != nil {
		h.respondStoreError(c, err, "Comment not found")
		return
	}
	respondData(c, comments)
}

func (h *Handler) ListCommentsByUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	comments, err := h.store.Comments.ListByUser(id)
	if err != nil {
		h.respondStoreError(c, err, "Comment not found")
		return
	}
	respondData(c, comments)
}

func (h *Handler) CreateComment(c *gin.Context) {
	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err, "body")
		return
	}

	comment := models.Comment{
		UserID:  req.UserID,
		VideoID: req.VideoID,
		Content: req.Content,
	}
	if err := h.store.Comments.Create(&comment); err != nil {
		h.respondStoreError(c, err, "Comment not found")
		return
	}

	respondData(c, comment)
}

func (h *Handler) UpdateComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateCommentRequest
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
	if req.Content != nil {
		fields["content"] = *req.Content
	}

	affected, err := h.store.Comments.Update(id, fields)
	if err != nil {
		h.respondStoreError(c, err, "Comment not found")
		return
	}
	if affected == 0 {
		respondMessage(c, http.StatusNotFound, "Comment not found")
		return
	}
	respondData(c, affected)
}

func (h *Handler) DeleteComment(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.store.Comments.Delete(id)
	if err != nil {
		h.respondStoreError(c, err, "Comment not found")
		return
	}
	if deleted == 0 {
		respondMessage(c, http.StatusNotFound, "Comment not found")
		return
	}
	respondData(c, deleted)
}
