package models

type TaskType struct {
	ID   uint64 `gorm:"primarykey" json:"id"`
	Name string `gorm:"type:varchar(63);not null" json:"name"`

	// Relations
	Tasks []Task `gorm:"foreignKey:TaskTypeID" json:"-"`
}
