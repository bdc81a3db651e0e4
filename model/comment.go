package model

import "time"

// Comment is a meme board entry. Author holds the display name captured
// at post time, not a live reference to the users table.
type Comment struct {
	ID        uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	Author    string    `gorm:"not null" json:"author"`
	Body      string    `gorm:"not null" json:"body"`
	CreatedAt time.Time `json:"created_at"`
}
