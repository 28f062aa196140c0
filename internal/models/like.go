package models

import "time"

// Like represents a user's like on a message.
// The (UserID, MessageID) composite key makes duplicate likes impossible.
type Like struct {
	UserID    uint      `gorm:"primaryKey;autoIncrement:false" json:"user_id"`
	MessageID uint      `gorm:"primaryKey;autoIncrement:false" json:"message_id"`
	CreatedAt time.Time `json:"created_at"`

	User    *User    `gorm:"foreignKey:UserID" json:"user,omitempty"`
	Message *Message `gorm:"foreignKey:MessageID" json:"message,omitempty"`
}

// TableName specifies the table name for GORM.
func (Like) TableName() string {
	return "likes"
}
