package models

import "time"

// Mission is a completable task inside a Life, gated by a minimum life level.
type Mission struct {
	ID          uint   `gorm:"primaryKey" json:"id"`
	LifeID      uint   `gorm:"index;not null" json:"life_id"`
	LevelNumber int    `gorm:"not null;default:1" json:"level_number"`
	Title       string `gorm:"size:255;not null" json:"title"`
	Slug        string `gorm:"size:255;uniqueIndex;not null" json:"slug"`
	Description string `gorm:"type:text" json:"description"`
	Points      int    `gorm:"not null;default:10" json:"points"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
