package models

import (
	"time"
)

type Video struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	UserID      uint      `gorm:"not null;index" json:"user_id"`
	User        *User     `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Title       string    `gorm:"not null;size:255" json:"title"`
	Description string    `gorm:"not null;type:text" json:"description"`
	Location    string    `gorm:"not null;size:255" json:"location"`
	Filename    string    `gorm:"size:255" json:"filename,omitempty"` // name of the stored upload, empty if none
	CreatedAt   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	Comments []Comment `gorm:"foreignKey:VideoID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:VideoID" json:"likes,omitempty"`
}
