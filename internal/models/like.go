package models

import (
	"time"
)

// A user may like the same video more than once; there is deliberately no
// unique index on (user_id, video_id). De-duplication is a product decision
// that has not been made yet.
type Like struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	VideoID   uint      `gorm:"not null;index" json:"video_id"`
	Video     *Video    `gorm:"foreignKey:VideoID" json:"video,omitempty"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}
