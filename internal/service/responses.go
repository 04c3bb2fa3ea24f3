package service

import (
	"time"

	"github.com/google/uuid"

	"manager-os-backend/internal/database/models"
)

// timeFormat is the wire format for all timestamps in responses
const timeFormat = time.RFC3339

// PersonRef is the compact person shape embedded in expanded responses
type PersonRef struct {
	ID       uuid.UUID `json:"id"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email,omitempty"`
}

// TeamRef is the compact team shape embedded in expanded responses
type TeamRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

// InitiativeRef is the compact initiative shape embedded in expanded responses
type InitiativeRef struct {
	ID     uuid.UUID               `json:"id"`
	Name   string                  `json:"name"`
	Status models.InitiativeStatus `json:"status"`
}

// UserRef is the compact user shape embedded in expanded responses
type UserRef struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
}

func personRef(p *models.Person) *PersonRef {
	if p == nil || p.ID == uuid.Nil {
		return nil
	}
	return &PersonRef{
		ID:       p.ID,
		FullName: p.FullName,
		Email:    p.Email,
	}
}

func teamRef(t *models.Team) *TeamRef {
	if t == nil || t.ID == uuid.Nil {
		return nil
	}
	return &TeamRef{ID: t.ID, Name: t.Name}
}

func initiativeRef(i *models.Initiative) *InitiativeRef {
	if i == nil || i.ID == uuid.Nil {
		return nil
	}
	return &InitiativeRef{ID: i.ID, Name: i.Name, Status: i.Status}
}

func userRef(u *models.User) *UserRef {
	if u == nil || u.ID == uuid.Nil {
		return nil
	}
	return &UserRef{ID: u.ID, Name: u.Name, Email: u.Email}
}
