package entity

import "time"

// Message belongs to exactly one match. Rows are append-only and ordered
// by the server-assigned timestamp.
type Message struct {
	ID          uint      `gorm:"primaryKey;column:id" json:"id"`
	MatchID     uint      `gorm:"column:match_id;not null;index" json:"match_id"`
	SenderID    uint      `gorm:"column:sender_id;not null" json:"sender_id"`
	MessageText string    `gorm:"column:message_text;not null" json:"message_text"`
	Timestamp   time.Time `gorm:"column:timestamp;autoCreateTime" json:"timestamp"`
}

func (Message) TableName() string {
	return "messages"
}
