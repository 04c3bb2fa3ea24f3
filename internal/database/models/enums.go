package models

// RecurrenceType represents how often a recurring meeting repeats
type RecurrenceType string

const (
	RecurrenceDaily        RecurrenceType = "daily"
	RecurrenceWeekly       RecurrenceType = "weekly"
	RecurrenceMonthly      RecurrenceType = "monthly"
	RecurrenceBiMonthly    RecurrenceType = "bi_monthly"
	RecurrenceSemiAnnually RecurrenceType = "semi_annually"
)

// IsValid reports whether the recurrence type is one of the known values
func (r RecurrenceType) IsValid() bool {
	switch r {
	case RecurrenceDaily, RecurrenceWeekly, RecurrenceMonthly, RecurrenceBiMonthly, RecurrenceSemiAnnually:
		return true
	}
	return false
}

// ParticipantStatus represents a person's invitation/attendance state on a
// meeting or meeting instance. invited/accepted/declined/tentative are
// pre-occurrence states, attended/absent are post-occurrence; transitions
// between any two statuses are allowed.
type ParticipantStatus string

const (
	ParticipantStatusInvited   ParticipantStatus = "invited"
	ParticipantStatusAccepted  ParticipantStatus = "accepted"
	ParticipantStatusDeclined  ParticipantStatus = "declined"
	ParticipantStatusTentative ParticipantStatus = "tentative"
	ParticipantStatusAttended  ParticipantStatus = "attended"
	ParticipantStatusAbsent    ParticipantStatus = "absent"
)

// IsValid reports whether the status is one of the known values
func (s ParticipantStatus) IsValid() bool {
	switch s {
	case ParticipantStatusInvited, ParticipantStatusAccepted, ParticipantStatusDeclined,
		ParticipantStatusTentative, ParticipantStatusAttended, ParticipantStatusAbsent:
		return true
	}
	return false
}

// InitiativeStatus represents the lifecycle state of an initiative
type InitiativeStatus string

const (
	InitiativeStatusActive InitiativeStatus = "active"
	InitiativeStatusPaused InitiativeStatus = "paused"
	InitiativeStatusDone   InitiativeStatus = "done"
)
