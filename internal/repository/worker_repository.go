package repository

import (
	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"gorm.io/gorm"
)

// GormWorkerRepository is a GORM implementation of WorkerRepository
type GormWorkerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository creates a new WorkerRepository
func NewWorkerRepository(db *gorm.DB) WorkerRepository {
	return &GormWorkerRepository{db: db}
}

// Create creates a new worker
func (r *GormWorkerRepository) Create(worker *models.Worker) error {
	return r.db.Create(worker).Error
}

// FindByID finds a worker by ID
func (r *GormWorkerRepository) FindByID(id uint64) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.Preload("Position").First(&worker, id).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

// FindByUsername finds a worker by username
func (r *GormWorkerRepository) FindByUsername(username string) (*models.Worker, error) {
	var worker models.Worker
	if err := r.db.Where("username = ?", username).First(&worker).Error; err != nil {
		return nil, err
	}
	return &worker, nil
}

// Update persists profile changes
func (r *GormWorkerRepository) Update(worker *models.Worker) error {
	return r.db.Save(worker).Error
}
