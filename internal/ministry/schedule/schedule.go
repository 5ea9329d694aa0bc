// Package schedule models volunteer rosters for service occurrences.
package schedule

import (
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "github.com/louisbranch/shepherd.church/internal/errors"
	"github.com/louisbranch/shepherd.church/internal/platform/id"
)

// Status describes the lifecycle of a schedule.
type Status int

const (
	// StatusUnspecified represents an invalid schedule status value.
	StatusUnspecified Status = iota
	// StatusDraft indicates the roster is still being arranged.
	StatusDraft
	// StatusPublished indicates the roster has been announced to volunteers.
	StatusPublished
)

var (
	// ErrEmptyChurchID indicates a missing church reference.
	ErrEmptyChurchID = apperrors.New(apperrors.CodeScheduleEmptyChurchID, "church id is required")
	// ErrEmptyMinistryID indicates a missing ministry reference.
	ErrEmptyMinistryID = apperrors.New(apperrors.CodeScheduleEmptyMinistryID, "ministry id is required")
	// ErrMissingServiceDate indicates a missing service date.
	ErrMissingServiceDate = apperrors.New(apperrors.CodeScheduleMissingServiceDate, "service date is required")
	// ErrEmptyScheduleID indicates a missing schedule reference.
	ErrEmptyScheduleID = apperrors.New(apperrors.CodeAssignmentEmptyScheduleID, "schedule id is required")
	// ErrEmptyMemberID indicates a missing volunteer reference.
	ErrEmptyMemberID = apperrors.New(apperrors.CodeAssignmentEmptyMemberID, "member id is required")
)

// Schedule is the roster for one service occurrence.
//
// EventID is a weak reference to a service event; it is not re-validated
// after creation. Assignments are owned exclusively by their schedule and
// are deleted with it.
type Schedule struct {
	ID          string
	ChurchID    string
	MinistryID  string
	EventID     string
	Notes       string
	Status      Status
	ServiceDate time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Assignments []Assignment
}

// Assignment links one volunteer to one schedule.
type Assignment struct {
	ID         string
	ScheduleID string
	MemberID   string
	// MemberName and MemberEmail are joined from the member directory on
	// read paths; they are not stored on the assignment row.
	MemberName  string
	MemberEmail string
	CreatedAt   time.Time
}

// CreateScheduleInput describes the metadata needed to create a schedule.
type CreateScheduleInput struct {
	ChurchID    string
	MinistryID  string
	EventID     string
	Notes       string
	ServiceDate time.Time
}

// CreateSchedule creates a new draft schedule with a generated ID and timestamps.
func CreateSchedule(input CreateScheduleInput, now func() time.Time, idGenerator func() (string, error)) (Schedule, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	input.ChurchID = strings.TrimSpace(input.ChurchID)
	input.MinistryID = strings.TrimSpace(input.MinistryID)
	input.EventID = strings.TrimSpace(input.EventID)
	input.Notes = strings.TrimSpace(input.Notes)
	if input.ChurchID == "" {
		return Schedule{}, ErrEmptyChurchID
	}
	if input.MinistryID == "" {
		return Schedule{}, ErrEmptyMinistryID
	}
	if input.ServiceDate.IsZero() {
		return Schedule{}, ErrMissingServiceDate
	}

	scheduleID, err := idGenerator()
	if err != nil {
		return Schedule{}, fmt.Errorf("generate schedule id: %w", err)
	}

	createdAt := now().UTC()
	return Schedule{
		ID:          scheduleID,
		ChurchID:    input.ChurchID,
		MinistryID:  input.MinistryID,
		EventID:     input.EventID,
		Notes:       input.Notes,
		Status:      StatusDraft,
		ServiceDate: input.ServiceDate.UTC(),
		CreatedAt:   createdAt,
		UpdatedAt:   createdAt,
	}, nil
}

// NewAssignment creates an assignment for a volunteer on a schedule.
//
// The duplicate check here guards the common path; under concurrent callers
// the storage uniqueness constraint on (schedule_id, member_id) is the
// authoritative guard.
func NewAssignment(s Schedule, memberID string, now func() time.Time, idGenerator func() (string, error)) (Assignment, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	memberID = strings.TrimSpace(memberID)
	if s.ID == "" {
		return Assignment{}, ErrEmptyScheduleID
	}
	if memberID == "" {
		return Assignment{}, ErrEmptyMemberID
	}
	if HasMember(s, memberID) {
		return Assignment{}, duplicateMemberError(s.ID, memberID)
	}

	assignmentID, err := idGenerator()
	if err != nil {
		return Assignment{}, fmt.Errorf("generate assignment id: %w", err)
	}

	return Assignment{
		ID:         assignmentID,
		ScheduleID: s.ID,
		MemberID:   memberID,
		CreatedAt:  now().UTC(),
	}, nil
}

// HasMember reports whether the volunteer already appears on the roster.
func HasMember(s Schedule, memberID string) bool {
	for _, assignment := range s.Assignments {
		if assignment.MemberID == memberID {
			return true
		}
	}
	return false
}

func duplicateMemberError(scheduleID, memberID string) error {
	return apperrors.WithMetadata(
		apperrors.CodeAssignmentDuplicateMember,
		fmt.Sprintf("member %s is already assigned to schedule %s", memberID, scheduleID),
		map[string]string{"MemberID": memberID, "ScheduleID": scheduleID},
	)
}

// Sort orders schedules by ascending service date, ties broken by ID, and
// orders each roster by assignment creation time.
func Sort(schedules []Schedule) {
	sort.SliceStable(schedules, func(i, j int) bool {
		if !schedules[i].ServiceDate.Equal(schedules[j].ServiceDate) {
			return schedules[i].ServiceDate.Before(schedules[j].ServiceDate)
		}
		return schedules[i].ID < schedules[j].ID
	})
	for _, s := range schedules {
		assignments := s.Assignments
		sort.SliceStable(assignments, func(i, j int) bool {
			if !assignments[i].CreatedAt.Equal(assignments[j].CreatedAt) {
				return assignments[i].CreatedAt.Before(assignments[j].CreatedAt)
			}
			return assignments[i].ID < assignments[j].ID
		})
	}
}

// String returns the stable wire label for the status.
func (s Status) String() string {
	switch s {
	case StatusDraft:
		return "draft"
	case StatusPublished:
		return "published"
	default:
		return "unspecified"
	}
}
