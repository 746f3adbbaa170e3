package utils

import (
	"path/filepath"

	"github.com/google/uuid"
)

// GenerateStoredFilename returns a collision-free name for an uploaded file,
// keeping the original extension so content type detection still works.
func GenerateStoredFilename(original string) string {
	return uuid.NewString() + filepath.Ext(original)
}
