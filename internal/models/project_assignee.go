package models

import "time"

type ProjectAssignee struct {
	ProjectID uint64    `gorm:"primarykey" json:"project_id"`
	WorkerID  uint64    `gorm:"primarykey" json:"worker_id"`
	JoinedAt  time.Time `json:"joined_at"`

	// Relations
	Project Project `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Worker  Worker  `gorm:"foreignKey:WorkerID" json:"worker,omitempty"`
}
