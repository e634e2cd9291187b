package models

import (
	"time"
)

// CheckIn links a user to a checkpoint on a route at a point in time.
// Records are write-once: never updated, never deleted.
type CheckIn struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	RouteID      uint      `json:"route_id" gorm:"not null;index"`
	UserID       string    `json:"user_id" gorm:"not null;size:191;index"`
	CheckpointID *uint     `json:"checkpoint_id"` // nullable column; creation path requires it
	CheckedAt    time.Time `json:"checked_at" gorm:"not null"`

	Route      Route       `json:"-" gorm:"foreignKey:RouteID"`
	User       User        `json:"-" gorm:"foreignKey:UserID"`
	Checkpoint *Checkpoint `json:"-" gorm:"foreignKey:CheckpointID"`
}
