package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ElGunner79/fish-stories/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// FieldError is one entry of the `errors` array in a 422 response.
type FieldError struct {
	Msg      string `json:"msg"`
	Param    string `json:"param"`
	Location string `json:"location"`
}

func respondData(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, gin.H{"result": http.StatusOK, "data": data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"result": status, "message": message})
}

func respondFieldErrors(c *gin.Context, errs []FieldError) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{
		"result": http.StatusUnprocessableEntity,
		"errors": errs,
	})
}

// respondBindingError turns a gin binding failure into a 422 with per-field
// detail when the validator produced it, a bare message otherwise.
func respondBindingError(c *gin.Context, err error, location string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fieldErrs := make([]FieldError, 0, len(verrs))
		for _, fe := range verrs {
			fieldErrs = append(fieldErrs, FieldError{
				Msg:      "failed on rule: " + fe.Tag(),
				Param:    fe.Field(),
				Location: location,
			})
		}
		respondFieldErrors(c, fieldErrs)
		return
	}
	respondMessage(c, http.StatusUnprocessableEntity, "Invalid request body")
}

// respondStoreError maps a store error kind to the HTTP status the API
// promises. Unknown errors become an opaque 500.
func (h *Handler) respondStoreError(c *gin.Context, err error, notFoundMsg string) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondMessage(c, http.StatusNotFound, notFoundMsg)
	case errors.Is(err, store.ErrUnique),
		errors.Is(err, store.ErrForeignKey),
		errors.Is(err, store.ErrValidation):
		respondMessage(c, http.StatusUnprocessableEntity, err.Error())
	default:
		h.logger.Error("store operation failed", "error", err, "path", c.FullPath())
		respondMessage(c, http.StatusInternalServerError, "Server error")
	}
}

// parseIDParam validates the :id path parameter: a positive integer. An
// invalid value is a validation failure (422), matching the rest of the API.
func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id < 1 {
		respondFieldErrors(c, []FieldError{{
			Msg:      "must be a positive integer",
			Param:    "id",
			Location: "params",
		}})
		return 0, false
	}
	return uint(id), true
}
