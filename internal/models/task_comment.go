package models

import "time"

type TaskComment struct {
	ID        uint64    `gorm:"primarykey" json:"id"`
	Message   string    `gorm:"type:text;not null" json:"message"`
	SenderID  uint64    `gorm:"not null" json:"sender_id"`
	TaskID    uint64    `gorm:"not null" json:"task_id"`
	CreatedAt time.Time `json:"created_at"`

	// Relations
	Sender Worker `gorm:"foreignKey:SenderID" json:"sender,omitempty"`
	Task   Task   `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}
