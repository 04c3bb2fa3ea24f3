package service

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"manager-os-backend/internal/auth"
	"manager-os-backend/internal/database/models"
	apperrors "manager-os-backend/internal/errors"
	"manager-os-backend/internal/repository"
)

// PersonService handles business logic for directory people
type PersonService struct {
	repo      repository.PersonRepositoryInterface
	teamRepo  repository.TeamRepositoryInterface
	validator *validator.Validate
}

// NewPersonService creates a new person service
func NewPersonService(repo repository.PersonRepositoryInterface, teamRepo repository.TeamRepositoryInterface, validator *validator.Validate) *PersonService {
	return &PersonService{repo: repo, teamRepo: teamRepo, validator: validator}
}

// CreatePersonRequest represents the request to create a person
type CreatePersonRequest struct {
	FullName  string     `json:"full_name" validate:"required,max=200"`
	FirstName string     `json:"first_name" validate:"max=100"`
	LastName  string     `json:"last_name" validate:"max=100"`
	Email     string     `json:"email" validate:"omitempty,email,max=255"`
	TeamID    *uuid.UUID `json:"team_id,omitempty"`
}

// PersonResponse represents the response for person operations
type PersonResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	FullName       string     `json:"full_name"`
	FirstName      string     `json:"first_name,omitempty"`
	LastName       string     `json:"last_name,omitempty"`
	Email          string     `json:"email,omitempty"`
	TeamID         *uuid.UUID `json:"team_id,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// PersonListResponse represents a paginated list of people
type PersonListResponse struct {
	People   []PersonResponse `json:"people"`
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
}

// Create creates a new person in the actor's organization
func (s *PersonService) Create(actor *auth.Actor, req *CreatePersonRequest) (*PersonResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("create people")
	}
	orgID := *actor.OrganizationID

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.TeamID != nil {
		if _, err := s.teamRepo.GetByID(*req.TeamID, orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrTeamNotFound
			}
			return nil, fmt.Errorf("failed to verify team: %w", err)
		}
	}

	person := &models.Person{
		OrganizationID: orgID,
		FullName:       req.FullName,
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		TeamID:         req.TeamID,
	}
	if err := s.repo.Create(person); err != nil {
		return nil, fmt.Errorf("failed to create person: %w", err)
	}

	return s.toResponse(person), nil
}

// GetByID retrieves a person in the actor's organization
func (s *PersonService) GetByID(actor *auth.Actor, id uuid.UUID) (*PersonResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("view people")
	}

	person, err := s.repo.GetByID(id, *actor.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrPersonNotFound
		}
		return nil, fmt.Errorf("failed to get person: %w", err)
	}
	return s.toResponse(person), nil
}

// List retrieves people in the actor's organization with pagination
func (s *PersonService) List(actor *auth.Actor, page, pageSize int) (*PersonListResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("view people")
	}
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	people, total, err := s.repo.GetByOrganizationID(*actor.OrganizationID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list people: %w", err)
	}

	responses := make([]PersonResponse, len(people))
	for i := range people {
		responses[i] = *s.toResponse(&people[i])
	}
	return &PersonListResponse{People: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *PersonService) toResponse(person *models.Person) *PersonResponse {
	return &PersonResponse{
		ID:             person.ID,
		OrganizationID: person.OrganizationID,
		FullName:       person.FullName,
		FirstName:      person.FirstName,
		LastName:       person.LastName,
		Email:          person.Email,
		TeamID:         person.TeamID,
		CreatedAt:      person.CreatedAt.Format(timeFormat),
		UpdatedAt:      person.UpdatedAt.Format(timeFormat),
	}
}
