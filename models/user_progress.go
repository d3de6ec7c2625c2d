package models

import "time"

// UserProgress records a single mission completion. The composite unique
// index is what enforces "a mission can be completed at most once per user" —
// concurrent inserts for the same pair cannot both commit. Rows are immutable
// once written; there is no un-completing.
type UserProgress struct {
	ID        uint `gorm:"primaryKey" json:"id"`
	UserID    uint `gorm:"not null;uniqueIndex:idx_user_mission" json:"user_id"`
	MissionID uint `gorm:"not null;uniqueIndex:idx_user_mission" json:"mission_id"`

	Completed    bool      `gorm:"not null;default:false" json:"completed"`
	CompletedAt  time.Time `json:"completed_at"`
	UserPhotoURL *string   `gorm:"size:255" json:"user_photo_url,omitempty"`
}
