package repository

import (
	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"gorm.io/gorm"
)

// GormLookupRepository is a GORM implementation of LookupRepository
type GormLookupRepository struct {
	db *gorm.DB
}

// NewLookupRepository creates a new LookupRepository
func NewLookupRepository(db *gorm.DB) LookupRepository {
	return &GormLookupRepository{db: db}
}

// ListPositions lists all positions
func (r *GormLookupRepository) ListPositions() ([]models.Position, error) {
	var positions []models.Position
	if err := r.db.Order("name").Find(&positions).Error; err != nil {
		return nil, err
	}
	return positions, nil
}

// ListTaskTypes lists all task types
func (r *GormLookupRepository) ListTaskTypes() ([]models.TaskType, error) {
	var taskTypes []models.TaskType
	if err := r.db.Order("name").Find(&taskTypes).Error; err != nil {
		return nil, err
	}
	return taskTypes, nil
}

// DeleteTaskType removes a task type. Tasks referencing it keep existing with
// the reference cleared, never cascaded.
func (r *GormLookupRepository) DeleteTaskType(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.Task{}).
			Where("task_type_id = ?", id).
			Update("task_type_id", nil).Error; err != nil {
			return err
		}

		return tx.Delete(&models.TaskType{}, id).Error
	})
}
