package models

import "time"

type ChatMessage struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	SenderID  uint64    `gorm:"not null" json:"sender_id"`
	ProjectID uint64    `gorm:"not null" json:"project_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Sender  Worker  `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
}
