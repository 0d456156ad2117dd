package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
	"github.com/mizutani-dev/teamtrack-api/internal/utils"
	"gorm.io/gorm"
)

var (
	ErrProjectNotFound         = errors.New("project not found")
	ErrInvalidProjectTitle     = errors.New("project title cannot be empty")
	ErrNotProjectMember        = errors.New("worker is not a member of this project")
	ErrMalformedInvitationCode = errors.New("invitation code is malformed")
	ErrInvalidInvitationCode   = errors.New("invitation code does not match any project")
)

// ProjectService provides business logic for project membership, lifecycle
// and the invitation flow.
type ProjectService struct {
	projectRepo repository.ProjectRepository
}

// NewProjectService creates a new ProjectService.
func NewProjectService(projectRepo repository.ProjectRepository) *ProjectService {
	return &ProjectService{
		projectRepo: projectRepo,
	}
}

// CreateProjectInput represents parameters to create a new project.
type CreateProjectInput struct {
	Title       string
	Description string
	CreatorID   uint64
}

// CreateProject creates a new project; the creator is added to the assignee
// set in the same transaction.
func (s *ProjectService) CreateProject(input CreateProjectInput) (*models.Project, error) {
	if strings.TrimSpace(input.Title) == "" {
		return nil, ErrInvalidProjectTitle
	}

	project := &models.Project{
		Title:       input.Title,
		Description: input.Description,
		CreatorID:   input.CreatorID,
	}

	if err := s.projectRepo.CreateWithCreator(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	return project, nil
}

// ListProjectsForWorker returns the de-duplicated union of projects the
// worker created and projects the worker is assigned to, ordered by title.
func (s *ProjectService) ListProjectsForWorker(workerID uint64, titleFilter string) ([]models.Project, error) {
	projects, err := s.projectRepo.ListForWorker(workerID, titleFilter)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return projects, nil
}

// GetProjectWithAssignees returns a project and its assignee set.
func (s *ProjectService) GetProjectWithAssignees(projectID uint64) (*models.Project, []models.ProjectAssignee, error) {
	project, err := s.projectRepo.FindByID(projectID, "Creator")
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, ErrProjectNotFound
		}
		return nil, nil, fmt.Errorf("failed to find project: %w", err)
	}

	assignees, err := s.projectRepo.ListAssignees(projectID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to list project assignees: %w", err)
	}

	return project, assignees, nil
}

// UpdateProjectInput holds project field changes.
type UpdateProjectInput struct {
	Title       *string
	Description *string
}

// UpdateProject applies field changes to a project. Creator-only access is
// enforced by the route guard before this is reached.
func (s *ProjectService) UpdateProject(projectID uint64, input UpdateProjectInput) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	if input.Title != nil {
		if strings.TrimSpace(*input.Title) == "" {
			return nil, ErrInvalidProjectTitle
		}
		project.Title = *input.Title
	}
	if input.Description != nil {
		project.Description = *input.Description
	}

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	return project, nil
}

// DeleteProject removes a project and everything owned by it.
func (s *ProjectService) DeleteProject(projectID uint64) error {
	if _, err := s.projectRepo.FindByID(projectID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProjectNotFound
		}
		return fmt.Errorf("failed to find project: %w", err)
	}

	if err := s.projectRepo.Delete(projectID); err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	return nil
}

// GenerateInvitationCode assigns the project a fresh globally-unique code,
// overwriting any prior one. Invalidating old codes on regeneration is the
// point: one active code per project.
func (s *ProjectService) GenerateInvitationCode(projectID uint64) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to find project: %w", err)
	}

	code := utils.GenerateInvitationCode()
	project.InvitationCode = &code

	if err := s.projectRepo.Update(project); err != nil {
		return nil, fmt.Errorf("failed to store invitation code: %w", err)
	}

	return project, nil
}

// JoinByInvitationCode redeems an invitation code for a worker. A malformed
// code is rejected before any lookup. Redeeming a code the worker already
// holds membership for is a benign no-op, reported via alreadyMember.
func (s *ProjectService) JoinByInvitationCode(workerID uint64, code string) (project *models.Project, alreadyMember bool, err error) {
	if !utils.ValidInvitationCode(code) {
		return nil, false, ErrMalformedInvitationCode
	}

	project, err = s.projectRepo.FindByInvitationCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, ErrInvalidInvitationCode
		}
		return nil, false, fmt.Errorf("failed to find project by invitation code: %w", err)
	}

	if _, err := s.projectRepo.FindAssignee(project.ID, workerID); err == nil {
		return project, true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, fmt.Errorf("failed to verify membership: %w", err)
	}

	assignee := &models.ProjectAssignee{
		ProjectID: project.ID,
		WorkerID:  workerID,
		JoinedAt:  time.Now(),
	}

	if err := s.projectRepo.AddAssignee(assignee); err != nil {
		return nil, false, fmt.Errorf("failed to add assignee: %w", err)
	}

	return project, false, nil
}

// IsMember reports whether the worker is the project's creator or one of its
// assignees. The creator counts as a member even without an assignee row.
func (s *ProjectService) IsMember(project *models.Project, workerID uint64) (bool, error) {
	if project.CreatorID == workerID {
		return true, nil
	}

	if _, err := s.projectRepo.FindAssignee(project.ID, workerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("failed to verify membership: %w", err)
	}

	return true, nil
}
