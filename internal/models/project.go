package models

import (
	"time"
)

type Project struct {
	ID             uint64    `gorm:"primarykey" json:"id"`
	Title          string    `gorm:"type:varchar(63);not null" json:"title"`
	Description    string    `gorm:"type:text" json:"description"`
	CreatorID      uint64    `gorm:"not null" json:"creator_id"`
	InvitationCode *string   `gorm:"type:varchar(36);uniqueIndex" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`

	// Relations
	Creator   Worker            `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Assignees []ProjectAssignee `gorm:"foreignKey:ProjectID" json:"assignees,omitempty"`
	Tasks     []Task            `gorm:"foreignKey:ProjectID" json:"tasks,omitempty"`
	Messages  []ChatMessage     `gorm:"foreignKey:ProjectID" json:"-"`
}
