package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mizutani-dev/teamtrack-api/internal/constants"
	"github.com/mizutani-dev/teamtrack-api/internal/models"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUsernameTaken        = errors.New("username already exists")
	ErrUsernameRequired     = errors.New("username is required")
	ErrInvalidCredentials   = errors.New("invalid username or password")
	ErrPasswordTooShort     = errors.New("password too short")
	ErrWorkerNotFound       = errors.New("worker not found")
	ErrFailedToHashPassword = errors.New("failed to hash password")
)

// AuthService handles registration, credential checks and profile updates.
type AuthService struct {
	workerRepo repository.WorkerRepository
}

// NewAuthService creates a new AuthService.
func NewAuthService(workerRepo repository.WorkerRepository) *AuthService {
	return &AuthService{
		workerRepo: workerRepo,
	}
}

// SignupInput represents the required information to register a worker.
type SignupInput struct {
	Username   string
	Password   string
	FirstName  string
	LastName   string
	PositionID *uint64
}

// Signup registers a new worker.
func (s *AuthService) Signup(input SignupInput) (*models.Worker, error) {
	username := strings.TrimSpace(input.Username)
	if username == "" {
		return nil, ErrUsernameRequired
	}
	if len(input.Password) < constants.MinPasswordLength {
		return nil, ErrPasswordTooShort
	}

	if _, err := s.workerRepo.FindByUsername(username); err == nil {
		return nil, ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check username: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ErrFailedToHashPassword
	}

	worker := &models.Worker{
		Username:     username,
		PasswordHash: string(hashedPassword),
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PositionID:   input.PositionID,
	}

	if err := s.workerRepo.Create(worker); err != nil {
		return nil, fmt.Errorf("failed to create worker: %w", err)
	}

	return worker, nil
}

// LoginInput holds the credentials for authentication.
type LoginInput struct {
	Username string
	Password string
}

// Login verifies credentials and returns the authenticated worker.
func (s *AuthService) Login(input LoginInput) (*models.Worker, error) {
	worker, err := s.workerRepo.FindByUsername(input.Username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(worker.PasswordHash), []byte(input.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return worker, nil
}

// GetWorker retrieves a worker by ID.
func (s *AuthService) GetWorker(id uint64) (*models.Worker, error) {
	worker, err := s.workerRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}

	return worker, nil
}

// UpdateProfileInput holds optional profile changes.
type UpdateProfileInput struct {
	FirstName     *string
	LastName      *string
	PositionID    *uint64
	ClearPosition bool
	AvatarPath    *string
}

// UpdateProfile applies profile changes to a worker.
func (s *AuthService) UpdateProfile(workerID uint64, input UpdateProfileInput) (*models.Worker, error) {
	worker, err := s.workerRepo.FindByID(workerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrWorkerNotFound
		}
		return nil, fmt.Errorf("failed to find worker: %w", err)
	}

	if input.FirstName != nil {
		worker.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		worker.LastName = *input.LastName
	}
	if input.ClearPosition {
		worker.PositionID = nil
		worker.Position = nil
	} else if input.PositionID != nil {
		worker.PositionID = input.PositionID
	}
	if input.AvatarPath != nil {
		worker.AvatarPath = *input.AvatarPath
	}

	if err := s.workerRepo.Update(worker); err != nil {
		return nil, fmt.Errorf("failed to update worker: %w", err)
	}

	// Re-fetch so the position relation reflects the change.
	return s.workerRepo.FindByID(worker.ID)
}
