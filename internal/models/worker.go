package models

import (
	"time"
)

type Worker struct {
	ID           uint64    `gorm:"primarykey" json:"id"`
	Username     string    `gorm:"type:varchar(63);uniqueIndex;not null" json:"username"`
	PasswordHash string    `gorm:"type:varchar(255);not null" json:"-"`
	FirstName    string    `gorm:"type:varchar(63)" json:"first_name"`
	LastName     string    `gorm:"type:varchar(63)" json:"last_name"`
	PositionID   *uint64   `json:"position_id"`
	AvatarPath   string    `gorm:"type:varchar(255)" json:"avatar_path"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Position        *Position     `gorm:"foreignKey:PositionID" json:"position,omitempty"`
	CreatedProjects []Project     `gorm:"foreignKey:CreatorID" json:"-"`
	CreatedTasks    []Task        `gorm:"foreignKey:CreatorID" json:"-"`
	Comments        []TaskComment `gorm:"foreignKey:SenderID" json:"-"`
	ChatMessages    []ChatMessage `gorm:"foreignKey:SenderID" json:"-"`
}
