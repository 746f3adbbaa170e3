package handlers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/ElGunner79/fish-stories/internal/models"
	"github.com/ElGunner79/fish-stories/pkg/utils"

	"github.com/gin-gonic/gin"
)

type CreateVideoRequest struct {
	UserID      uint   `json:"user_id" form:"user_id" binding:"required"`
	Title       string `json:"title" form:"title" binding:"required"`
	Description string `json:"description" form:"description" binding:"required"`
	Location    string `json:"location" form:"location" binding:"required"`
}

type UpdateVideoRequest struct {
	UserID      *uint   `json:"user_id"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
}

func (h *Handler) ListVideos(c *gin.Context) {
	videos, err := h.store.Videos.List()
	if err != nil {
		h.respondStoreError(c, err, "Video not found")
		return
	}
	respondData(c, videos)
}

func (h *Handler) GetVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	video, err := h.store.Videos.Get(id)
	if err != nil {
		h.respondStoreError(c, err, "Video not found")
		return
	}
	respondData(c, video)
}

func (h *Handler) GetVideoInclude(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	video, err := h.store.Videos.GetWithRelations(id)
	if err != nil {
		h.respondStoreError(c, err, "Video not found")
		return
	}
	respondData(c, video)
}

func (h *Handler) ListVideosByUser(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	videos, err := h.store.Videos.ListByUser(id)
	if err != nil {
		h.respondStoreError(c, err, "Video not found")
		return
	}
	respondData(c, videos)
}

// CreateVideo accepts JSON or multipart form data. A multipart request may
// carry the upload itself in the `video` field; the file is stored under the
// uploads dir with a generated name recorded on the row.
func (h *Handler) CreateVideo(c *gin.Context) {
	var req CreateVideoRequest

	contentType := c.ContentType()
	isMultipart := strings.HasPrefix(contentType, "multipart/form-data")
	if isMultipart {
		if err := c.ShouldBind(&req); err != nil {
			respondBindingError(c, err, "body")
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindingError(c, err, "body")
			return
		}
	}

	video := models.Video{
		UserID:      req.UserID,
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
	}

	if isMultipart {
		if file, err := c.FormFile("video"); err == nil {
			stored := utils.GenerateStoredFilename(file.Filename)
			if err := c.SaveUploadedFile(file, filepath.Join(h.cfg.UploadsDir, stored)); err != nil {
				h.logger.Error("failed to store upload", "error", err)
				respondMessage(c, http.StatusInternalServerError, "Server error")
				return
			}
			video.Filename = stored
		}
	}

	if err := h.store.Videos.Create(&video); err != nil {
		h.respondStoreError(c, err, "Video not found")
		return
	}

	respondData(c, video)
}

func (h *Handler) UpdateVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var req UpdateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err, "body")
		return
	}

	fields := map[string]interface{}{}
	if req.UserID != nil {
		fields["user_id"] = *req.UserID
	}
	if req.Title != nil {
		fields["title"] = *req.Title
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Location != nil {
		fields["location"] = *req.Location
	}

	affected, err := h.store.Videos.Update(id, fields)
	if err != nil {
		h.respondStoreError(c, err, "Video not found")
		return
	}
	if affected == 0 {
		respondMessage(c, http.StatusNotFound, "Video not found")
		return
	}
	respondData(c, affected)
}

func (h *Handler) DeleteVideo(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	deleted, err := h.store.Videos.Delete(id)
	if err != nil {
		h.respondStoreError(c, err, "Video not found")
		return
	}
	if deleted == 0 {
		respondMessage(c, http.StatusNotFound, "Video not found")
		return
	}
	respondData(c, deleted)
}
