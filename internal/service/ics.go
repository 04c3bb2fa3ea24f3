package service

import (
	"errors"
	"fmt"
	"strings"
	"time"

	ics "github.com/arran4/golang-ical"
	"gorm.io/gorm"

	"manager-os-backend/internal/auth"
	"manager-os-backend/internal/database/models"
	apperrors "manager-os-backend/internal/errors"
	"manager-os-backend/internal/repository"
)

// ICSImportService turns an uploaded iCalendar file into a payload ready to
// feed into MeetingInstanceService.Create. It reads but never writes the
// database: persons are looked up to match attendees, nothing else.
type ICSImportService struct {
	personRepo repository.PersonRepositoryInterface
}

// NewICSImportService creates a new ICS import service
func NewICSImportService(personRepo repository.PersonRepositoryInterface) *ICSImportService {
	return &ICSImportService{personRepo: personRepo}
}

// MeetingInstanceImportResult is the normalized shape extracted from an ICS
// file, matching the create-instance payload minus the meeting id
type MeetingInstanceImportResult struct {
	ScheduledAt  time.Time          `json:"scheduled_at"`
	Notes        string             `json:"notes,omitempty"`
	Participants []ParticipantInput `json:"participants"`
}

// ImportMeetingInstance parses ICS text and extracts the first event.
// Attendees are matched to Persons in the actor's organization by email;
// attendees without a matching person are skipped.
func (s *ICSImportService) ImportMeetingInstance(actor *auth.Actor, fileContent string) (*MeetingInstanceImportResult, error) {
	if actor.OrganizationID == nil {
		return nil, apperrors.NewNoOrganizationError("import meeting instances")
	}
	orgID := *actor.OrganizationID

	cal, err := ics.ParseCalendar(strings.NewReader(fileContent))
	if err != nil {
		return nil, fmt.Errorf("failed to parse calendar file: %w", err)
	}

	events := cal.Events()
	if len(events) == 0 {
		return nil, apperrors.ErrImportNoEvent
	}
	event := events[0]

	startAt, err := event.GetStartAt()
	if err != nil {
		return nil, apperrors.NewValidationError("scheduled_at", "event has no parseable start time")
	}

	result := &MeetingInstanceImportResult{
		ScheduledAt:  startAt,
		Notes:        eventNotes(event),
		Participants: []ParticipantInput{},
	}

	seen := make(map[string]struct{})
	for _, attendee := range event.Attendees() {
		email := strings.ToLower(strings.TrimSpace(attendee.Email()))
		if email == "" {
			continue
		}
		if _, dup := seen[email]; dup {
			continue
		}
		seen[email] = struct{}{}

		person, err := s.personRepo.GetByEmail(email, orgID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				continue
			}
			return nil, fmt.Errorf("failed to match attendee %s: %w", email, err)
		}

		result.Participants = append(result.Participants, ParticipantInput{
			PersonID: person.ID,
			Status:   partStatToStatus(attendee),
		})
	}

	return result, nil
}

// eventNotes joins the event summary and description into the notes field
func eventNotes(event *ics.VEvent) string {
	var parts []string
	if prop := event.GetProperty(ics.ComponentPropertySummary); prop != nil && prop.Value != "" {
		parts = append(parts, prop.Value)
	}
	if prop := event.GetProperty(ics.ComponentPropertyDescription); prop != nil && prop.Value != "" {
		parts = append(parts, prop.Value)
	}
	return strings.Join(parts, "\n")
}

// partStatToStatus maps an attendee PARTSTAT parameter onto the
// participant status enum, defaulting to invited
func partStatToStatus(attendee *ics.Attendee) models.ParticipantStatus {
	values, ok := attendee.ICalParameters[string(ics.ParameterParticipationStatus)]
	if !ok || len(values) == 0 {
		return models.ParticipantStatusInvited
	}
	switch strings.ToUpper(values[0]) {
	case "ACCEPTED":
		return models.ParticipantStatusAccepted
	case "DECLINED":
		return models.ParticipantStatusDeclined
	case "TENTATIVE":
		return models.ParticipantStatusTentative
	default:
		return models.ParticipantStatusInvited
	}
}
