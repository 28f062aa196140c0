package models

import "time"

// MaxMessageLength is the upper bound on warble text.
const MaxMessageLength = 140

// Message represents a short post (a "warble").
type Message struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Text      string    `gorm:"type:varchar(140);not null" json:"text"`
	Timestamp time.Time `gorm:"autoCreateTime" json:"timestamp"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	User      User      `gorm:"foreignKey:UserID" json:"user,omitempty"`
	// LikesCount is not persisted; computed at query time
	LikesCount int `gorm:"->" json:"likes_count"`
}

// TableName specifies the table name for GORM.
func (Message) TableName() string {
	return "messages"
}
