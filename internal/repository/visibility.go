package repository

import (
	"github.com/google/uuid"
)

// meetingVisibilityCondition builds the SQL condition for whether an actor
// may read a meeting: the meeting is public, the actor created it, the
// actor's linked person owns it, or that person is on the participant list.
// When the actor has no linked person the person-based alternatives are
// simply omitted from the OR.
func meetingVisibilityCondition(userID uuid.UUID, personID *uuid.UUID) (string, []interface{}) {
	cond := "(meetings.is_private = FALSE OR meetings.created_by_id = ?"
	args := []interface{}{userID}
	if personID != nil {
		cond += " OR meetings.owner_id = ?" +
			" OR EXISTS (SELECT 1 FROM meeting_participants mp WHERE mp.meeting_id = meetings.id AND mp.person_id = ?)"
		args = append(args, *personID, *personID)
	}
	cond += ")"
	return cond, args
}

// instanceVisibilityCondition extends the meeting condition with one more
// alternative for instances: the actor's linked person is on the instance's
// own participant list. Evaluated against meeting_instances joined to their
// parent meetings.
func instanceVisibilityCondition(userID uuid.UUID, personID *uuid.UUID) (string, []interface{}) {
	cond := "(meetings.is_private = FALSE OR meetings.created_by_id = ?"
	args := []interface{}{userID}
	if personID != nil {
		cond += " OR meetings.owner_id = ?" +
			" OR EXISTS (SELECT 1 FROM meeting_participants mp WHERE mp.meeting_id = meetings.id AND mp.person_id = ?)" +
			" OR EXISTS (SELECT 1 FROM meeting_instance_participants mip WHERE mip.meeting_instance_id = meeting_instances.id AND mip.person_id = ?)"
		args = append(args, *personID, *personID, *personID)
	}
	cond += ")"
	return cond, args
}
