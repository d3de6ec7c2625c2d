package models

import "time"

// UserReward is an append-only log of rewards granted on level-up. Multiple
// rewards per user are allowed; rows are never updated or deleted.
type UserReward struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"user_id"`
	RewardName string    `gorm:"size:255;not null" json:"reward_name"`
	RewardedAt time.Time `json:"rewarded_at"`
}
