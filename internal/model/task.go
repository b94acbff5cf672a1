package model

import (
	"time"

	"gorm.io/gorm"
)

// Task represents a to-do item owned by exactly one user. Deletion is a
// soft delete: DeletedAt excludes the row from every read, count and
// conditional update without per-query filters.
type Task struct {
	ID        uint           `json:"id" gorm:"primaryKey"`
	Title     string         `json:"title" gorm:"size:255;not null"`
	Done      bool           `json:"done" gorm:"not null;default:false"`
	UserID    uint           `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`

	// Relations
	User User `json:"-" gorm:"foreignKey:UserID"`
}
