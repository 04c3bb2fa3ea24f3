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

// InitiativeService handles business logic for initiatives
type InitiativeService struct {
	repo       repository.InitiativeRepositoryInterface
	personRepo repository.PersonRepositoryInterface
	validator  *validator.Validate
}

// NewInitiativeService creates a new initiative service
func NewInitiativeService(repo repository.InitiativeRepositoryInterface, personRepo repository.PersonRepositoryInterface, validator *validator.Validate) *InitiativeService {
	return &InitiativeService{repo: repo, personRepo: personRepo, validator: validator}
}

// CreateInitiativeRequest represents the request to create an initiative
type CreateInitiativeRequest struct {
	Name        string     `json:"name" validate:"required,min=1,max=200"`
	Description string     `json:"description"`
	Status      string     `json:"status" validate:"omitempty,oneof=active paused done"`
	OwnerID     *uuid.UUID `json:"owner_id"`
}

// UpdateInitiativeRequest represents the request to update an initiative
type UpdateInitiativeRequest struct {
	Name        *string    `json:"name" validate:"omitempty,min=1,max=200"`
	Description *string    `json:"description"`
	Status      *string    `json:"status" validate:"omitempty,oneof=active paused done"`
	OwnerID     *uuid.UUID `json:"owner_id"`
}

// InitiativeResponse represents the response for initiative operations
type InitiativeResponse struct {
	ID             uuid.UUID  `json:"id"`
	OrganizationID uuid.UUID  `json:"organization_id"`
	Name           string     `json:"name"`
	Description    string     `json:"description,omitempty"`
	Status         string     `json:"status"`
	Owner          *PersonRef `json:"owner,omitempty"`
	CreatedAt      string     `json:"created_at"`
	UpdatedAt      string     `json:"updated_at"`
}

// InitiativeListResponse represents a paginated list of initiatives
type InitiativeListResponse struct {
	Initiatives []InitiativeResponse `json:"initiatives"`
	Total       int64                `json:"total"`
	Page        int                  `json:"page"`
	PageSize    int                  `json:"page_size"`
}

// Create creates a new initiative in the actor's organization
func (s *InitiativeService) Create(actor *auth.Actor, req *CreateInitiativeRequest) (*InitiativeResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("create initiatives")
	}
	orgID := *actor.OrganizationID

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if req.OwnerID != nil {
		if _, err := s.personRepo.GetByID(*req.OwnerID, orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonNotFound
			}
			return nil, fmt.Errorf("failed to verify owner: %w", err)
		}
	}

	status := models.InitiativeStatusActive
	if req.Status != "" {
		status = models.InitiativeStatus(req.Status)
	}

	initiative := &models.Initiative{
		OrganizationID: orgID,
		Name:           req.Name,
		Description:    req.Description,
		Status:         status,
		OwnerID:        req.OwnerID,
	}
	if err := s.repo.Create(initiative); err != nil {
		return nil, fmt.Errorf("failed to create initiative: %w", err)
	}

	return s.toResponse(initiative), nil
}

// Update updates an initiative in the actor's organization
func (s *InitiativeService) Update(actor *auth.Actor, id uuid.UUID, req *UpdateInitiativeRequest) (*InitiativeResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("update initiatives")
	}
	orgID := *actor.OrganizationID

	if err := s.validator.Struct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	initiative, err := s.repo.GetByID(id, orgID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInitiativeNotFound
		}
		return nil, fmt.Errorf("failed to get initiative: %w", err)
	}

	if req.Name != nil {
		initiative.Name = *req.Name
	}
	if req.Description != nil {
		initiative.Description = *req.Description
	}
	if req.Status != nil {
		initiative.Status = models.InitiativeStatus(*req.Status)
	}
	if req.OwnerID != nil {
		if _, err := s.personRepo.GetByID(*req.OwnerID, orgID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrPersonNotFound
			}
			return nil, fmt.Errorf("failed to verify owner: %w", err)
		}
		initiative.OwnerID = req.OwnerID
	}

	if err := s.repo.Update(initiative); err != nil {
		return nil, fmt.Errorf("failed to update initiative: %w", err)
	}
	return s.toResponse(initiative), nil
}

// GetByID retrieves an initiative in the actor's organization
func (s *InitiativeService) GetByID(actor *auth.Actor, id uuid.UUID) (*InitiativeResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("view initiatives")
	}

	initiative, err := s.repo.GetByID(id, *actor.OrganizationID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrInitiativeNotFound
		}
		return nil, fmt.Errorf("failed to get initiative: %w", err)
	}
	return s.toResponse(initiative), nil
}

// List retrieves initiatives in the actor's organization with pagination
func (s *InitiativeService) List(actor *auth.Actor, page, pageSize int) (*InitiativeListResponse, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("view initiatives")
	}
	if page < 1 || pageSize < 1 {
		return nil, apperrors.ErrInvalidPaginationParams
	}

	initiatives, total, err := s.repo.GetByOrganizationID(*actor.OrganizationID, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, fmt.Errorf("failed to list initiatives: %w", err)
	}

	responses := make([]InitiativeResponse, len(initiatives))
	for i := range initiatives {
		responses[i] = *s.toResponse(&initiatives[i])
	}
	return &InitiativeListResponse{Initiatives: responses, Total: total, Page: page, PageSize: pageSize}, nil
}

func (s *InitiativeService) toResponse(initiative *models.Initiative) *InitiativeResponse {
	return &InitiativeResponse{
		ID:             initiative.ID,
		OrganizationID: initiative.OrganizationID,
		Name:           initiative.Name,
		Description:    initiative.Description,
		Status:         string(initiative.Status),
		Owner:          personRef(initiative.Owner),
		CreatedAt:      initiative.CreatedAt.Format(timeFormat),
		UpdatedAt:      initiative.UpdatedAt.Format(timeFormat),
	}
}
