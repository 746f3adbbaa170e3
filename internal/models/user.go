package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"not null;size:120" json:"name"`
	Surname   string    `gorm:"not null;size:120" json:"surname"`
	Email     string    `gorm:"unique;not null;size:120" json:"email"`
	Password  string    `gorm:"not null;size:255" json:"-"` // bcrypt hash, never the plaintext
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	Videos   []Video   `gorm:"foreignKey:UserID" json:"videos,omitempty"`
	Comments []Comment `gorm:"foreignKey:UserID" json:"comments,omitempty"`
	Likes    []Like    `gorm:"foreignKey:UserID" json:"likes,omitempty"`
}
