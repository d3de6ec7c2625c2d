package models

import "time"

// UserLifeProgress holds accumulated XP per (user, life). One row per pair,
// created lazily on the first mission completion for that life and never
// deleted. Level is always re-derived from XP on write; the stored column is
// a denormalized copy for reads.
type UserLifeProgress struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"not null;uniqueIndex:idx_user_life" json:"user_id"`
	LifeID uint `gorm:"not null;uniqueIndex:idx_user_life" json:"life_id"`
	XP     int  `gorm:"not null;default:0" json:"xp"`
	Level  int  `gorm:"not null;default:1" json:"level"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
