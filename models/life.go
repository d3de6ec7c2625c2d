package models

import "time"

// Life is a thematic progression track (e.g. "Boulangerie") that missions
// and per-user XP are grouped under. Reference data, never user-owned.
type Life struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
