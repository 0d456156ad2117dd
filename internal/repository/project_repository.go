package repository

import (
	"time"

	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"gorm.io/gorm"
)

// GormProjectRepository is a GORM implementation of ProjectRepository
type GormProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &GormProjectRepository{db: db}
}

// CreateWithCreator creates a project and adds its creator to the assignee
// set atomically.
func (r *GormProjectRepository) CreateWithCreator(project *models.Project) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(project).Error; err != nil {
			return err
		}

		assignee := models.ProjectAssignee{
			ProjectID: project.ID,
			WorkerID:  project.CreatorID,
			JoinedAt:  time.Now(),
		}
		return tx.Create(&assignee).Error
	})
}

// FindByID finds a project by ID with optional preloading
func (r *GormProjectRepository) FindByID(id uint64, preload ...string) (*models.Project, error) {
	var project models.Project
	query := r.db

	for _, p := range preload {
		query = query.Preload(p)
	}

	if err := query.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByInvitationCode finds a project by its active invitation code
func (r *GormProjectRepository) FindByInvitationCode(code string) (*models.Project, error) {
	var project models.Project
	if err := r.db.Where("invitation_code = ?", code).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// Update updates a project
func (r *GormProjectRepository) Update(project *models.Project) error {
	return r.db.Save(project).Error
}

// Delete deletes a project, its tasks and their comments, its chat messages,
// and its assignee rows in a transaction. The invitation code lives on the
// project row and goes with it.
func (r *GormProjectRepository) Delete(id uint64) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		taskIDs := tx.Model(&models.Task{}).Select("id").Where("project_id = ?", id)
		if err := tx.Where("task_id IN (?)", taskIDs).Delete(&models.TaskComment{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.Task{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.ChatMessage{}).Error; err != nil {
			return err
		}

		if err := tx.Where("project_id = ?", id).Delete(&models.ProjectAssignee{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Project{}, id).Error
	})
}

// AddAssignee adds a worker to the project's assignee set
func (r *GormProjectRepository) AddAssignee(assignee *models.ProjectAssignee) error {
	return r.db.Create(assignee).Error
}

// FindAssignee finds a specific assignee row
func (r *GormProjectRepository) FindAssignee(projectID, workerID uint64) (*models.ProjectAssignee, error) {
	var assignee models.ProjectAssignee
	if err := r.db.Where("project_id = ? AND worker_id = ?", projectID, workerID).
		First(&assignee).Error; err != nil {
		return nil, err
	}
	return &assignee, nil
}

// ListAssignees lists the assignees of a project
func (r *GormProjectRepository) ListAssignees(projectID uint64) ([]models.ProjectAssignee, error) {
	var assignees []models.ProjectAssignee
	if err := r.db.Preload("Worker").
		Where("project_id = ?", projectID).
		Find(&assignees).Error; err != nil {
		return nil, err
	}
	return assignees, nil
}

// ListForWorker returns the de-duplicated union of projects the worker
// created and projects the worker is assigned to, ordered by title.
func (r *GormProjectRepository) ListForWorker(workerID uint64, titleFilter string) ([]models.Project, error) {
	var projects []models.Project

	query := r.db.Model(&models.Project{}).
		Distinct("projects.*").
		Joins("LEFT JOIN project_assignees ON project_assignees.project_id = projects.id").
		Where("projects.creator_id = ? OR project_assignees.worker_id = ?", workerID, workerID)

	if titleFilter != "" {
		query = query.Where("LOWER(projects.title) LIKE LOWER(?)", "%"+titleFilter+"%")
	}

	if err := query.Order("projects.title").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}
