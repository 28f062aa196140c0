package models

import "time"

// Follow is a directed edge meaning "follower follows followee".
// The composite primary key doubles as the uniqueness constraint that
// concurrent double-follows resolve against.
type Follow struct {
	FollowerID uint      `gorm:"primaryKey;autoIncrement:false" json:"follower_id"`
	FolloweeID uint      `gorm:"primaryKey;autoIncrement:false" json:"followee_id"`
	CreatedAt  time.Time `json:"created_at"`

	Follower *User `gorm:"foreignKey:FollowerID" json:"follower,omitempty"`
	Followee *User `gorm:"foreignKey:FolloweeID" json:"followee,omitempty"`
}

// TableName specifies the table name for GORM.
func (Follow) TableName() string {
	return "followers_followee"
}
