package models

import "time"

// User identity. Accounts are created by an external profile service; this
// system only references them by id.
type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Username  string    `gorm:"size:100;uniqueIndex;not null" json:"username"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
}
