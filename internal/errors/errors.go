package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents an error when an entity is not found, belongs to
// another organization, or is hidden from the actor by the visibility rules.
// All three causes share one message so callers cannot probe for records in
// other tenants.
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found or access denied", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// AlreadyExistsError represents an error when an entity already exists
type AlreadyExistsError struct {
	Entity  string
	Context string // Additional context like "on this meeting instance"
}

func (e *AlreadyExistsError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for AlreadyExistsError
func (e *AlreadyExistsError) Is(target error) bool {
	t, ok := target.(*AlreadyExistsError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a field-level validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// AuthenticationError represents authentication-related errors
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string {
	return e.Message
}

// AuthorizationError represents authorization-related errors, including the
// tenancy precondition failure when the actor has no organization
type AuthorizationError struct {
	Message string
}

func (e *AuthorizationError) Error() string {
	return e.Message
}

// Entity Not Found Errors
var (
	ErrOrganizationNotFound    = &NotFoundError{Entity: "organization"}
	ErrUserNotFound            = &NotFoundError{Entity: "user"}
	ErrPersonNotFound          = &NotFoundError{Entity: "person"}
	ErrTeamNotFound            = &NotFoundError{Entity: "team"}
	ErrInitiativeNotFound      = &NotFoundError{Entity: "initiative"}
	ErrMeetingNotFound         = &NotFoundError{Entity: "meeting"}
	ErrMeetingInstanceNotFound = &NotFoundError{Entity: "meeting instance"}
	ErrParticipantNotFound     = &NotFoundError{Entity: "meeting participant"}
)

// Already Exists Errors
var (
	ErrOrganizationExists = &AlreadyExistsError{Entity: "organization", Context: "with this name or domain"}
	ErrTeamExists         = &AlreadyExistsError{Entity: "team", Context: "with this name in the organization"}
	ErrUserExists         = &AlreadyExistsError{Entity: "user", Context: "with this email"}
	// ErrParticipantExists is the duplicate-participant business rule. It is a
	// descriptive error, deliberately distinct from the not-found collapse,
	// so a caller can branch on it.
	ErrParticipantExists = &AlreadyExistsError{Entity: "participant", Context: "on this meeting instance"}
)

// Business Logic Errors
var (
	ErrInvalidStatus           = errors.New("invalid participant status")
	ErrInvalidPaginationParams = errors.New("invalid pagination parameters")
	ErrImportNoEvent           = errors.New("calendar file contains no events")
)

// Authentication Errors
var (
	ErrInvalidToken = &AuthenticationError{Message: "invalid or expired token"}
	ErrNoActor      = &AuthenticationError{Message: "no authenticated user in request context"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsAlreadyExists checks if an error is an AlreadyExistsError
func IsAlreadyExists(err error) bool {
	var existsErr *AlreadyExistsError
	return errors.As(err, &existsErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsAuthentication checks if an error is an AuthenticationError
func IsAuthentication(err error) bool {
	var authErr *AuthenticationError
	return errors.As(err, &authErr)
}

// IsAuthorization checks if an error is an AuthorizationError
func IsAuthorization(err error) bool {
	var authzErr *AuthorizationError
	return errors.As(err, &authzErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewAlreadyExistsError creates a new AlreadyExistsError for a custom entity
func NewAlreadyExistsError(entity, context string) error {
	return &AlreadyExistsError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewAuthenticationError creates a new AuthenticationError
func NewAuthenticationError(message string) error {
	return &AuthenticationError{Message: message}
}

// NewAuthorizationError creates a new AuthorizationError
func NewAuthorizationError(message string) error {
	return &AuthorizationError{Message: message}
}

// NewNoOrganizationError creates the tenancy precondition error raised when
// an actor without an organization attempts a tenant-scoped action
func NewNoOrganizationError(action string) error {
	return &AuthorizationError{Message: fmt.Sprintf("user must belong to an organization to %s", action)}
}
