package models

import (
	"time"
)

type TaskPriority string

const (
	TaskPriorityHigh   TaskPriority = "High"
	TaskPriorityMedium TaskPriority = "Medium"
	TaskPriorityLow    TaskPriority = "Low"
)

type TaskStatus string

const (
	TaskStatusTodo  TaskStatus = "To do"
	TaskStatusDoing TaskStatus = "Doing"
	TaskStatusDone  TaskStatus = "Done"
)

type Task struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Name        string       `gorm:"type:varchar(63);not null" json:"name"`
	Description string       `gorm:"type:text" json:"description"`
	Deadline    *time.Time   `json:"deadline"`
	Priority    TaskPriority `gorm:"type:varchar(10);not null;default:'Medium'" json:"priority"`
	Status      TaskStatus   `gorm:"type:varchar(10);not null;default:'To do'" json:"status"`
	TaskTypeID  *uint64      `json:"task_type_id"`
	CreatorID   uint64       `gorm:"not null" json:"creator_id"`
	ProjectID   uint64       `gorm:"not null" json:"project_id"`
	CreatedAt   time.Time    `json:"created_at"`
	// UpdatedAt is the "last modified" timestamp the cleanup pass keys on.
	UpdatedAt time.Time `json:"updated_at"`

	// Relations
	Creator  Worker        `gorm:"foreignKey:CreatorID" json:"creator,omitempty"`
	Project  Project       `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	TaskType *TaskType     `gorm:"foreignKey:TaskTypeID" json:"task_type,omitempty"`
	Comments []TaskComment `gorm:"foreignKey:TaskID" json:"comments,omitempty"`
}
