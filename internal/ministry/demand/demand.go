// Package demand models the lifecycle of ministry tasks.
package demand

import (
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "github.com/louisbranch/shepherd.church/internal/errors"
	"github.com/louisbranch/shepherd.church/internal/platform/id"
)

// Status describes the lifecycle state of a demand.
type Status int

const (
	// StatusUnspecified represents an invalid status value.
	StatusUnspecified Status = iota
	// StatusPending indicates the demand has not been started.
	StatusPending
	// StatusInProgress indicates the demand is being worked on.
	StatusInProgress
	// StatusDone indicates the demand is finished. Done is soft-terminal:
	// reopening back to pending or in-progress is permitted.
	StatusDone
)

// Priority orders demands within a board column.
type Priority int

const (
	// PriorityNone indicates no explicit priority.
	PriorityNone Priority = iota
	// PriorityLow is the lowest explicit priority.
	PriorityLow
	// PriorityMedium is the default explicit priority.
	PriorityMedium
	// PriorityHigh sorts first within a column.
	PriorityHigh
)

var (
	// ErrEmptyChurchID indicates a missing church reference.
	ErrEmptyChurchID = apperrors.New(apperrors.CodeDemandEmptyChurchID, "church id is required")
	// ErrEmptyMinistryID indicates a missing ministry reference.
	ErrEmptyMinistryID = apperrors.New(apperrors.CodeDemandEmptyMinistryID, "ministry id is required")
	// ErrEmptyTitle indicates a missing demand title.
	ErrEmptyTitle = apperrors.New(apperrors.CodeDemandEmptyTitle, "demand title is required")
	// ErrEmptyResponsible indicates a missing responsible member reference.
	ErrEmptyResponsible = apperrors.New(apperrors.CodeDemandEmptyResponsible, "responsible member id is required")
)

// Demand is one unit of ministry work.
//
// EventID is a weak reference: it must point at an existing event when the
// demand is created, but it is never re-validated afterwards.
type Demand struct {
	ID                  string
	ChurchID            string
	MinistryID          string
	EventID             string
	ResponsibleMemberID string
	Title               string
	Description         string
	Status              Status
	Priority            Priority
	DueAt               *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// CreateDemandInput describes the metadata needed to create a demand.
type CreateDemandInput struct {
	ChurchID            string
	MinistryID          string
	EventID             string
	ResponsibleMemberID string
	Title               string
	Description         string
	Priority            Priority
	DueAt               *time.Time
}

// CreateDemand creates a new pending demand with a generated ID and timestamps.
func CreateDemand(input CreateDemandInput, now func() time.Time, idGenerator func() (string, error)) (Demand, error) {
	if now == nil {
		now = time.Now
	}
	if idGenerator == nil {
		idGenerator = id.NewID
	}

	normalized, err := NormalizeCreateDemandInput(input)
	if err != nil {
		return Demand{}, err
	}

	demandID, err := idGenerator()
	if err != nil {
		return Demand{}, fmt.Errorf("generate demand id: %w", err)
	}

	createdAt := now().UTC()
	return Demand{
		ID:                  demandID,
		ChurchID:            normalized.ChurchID,
		MinistryID:          normalized.MinistryID,
		EventID:             normalized.EventID,
		ResponsibleMemberID: normalized.ResponsibleMemberID,
		Title:               normalized.Title,
		Description:         normalized.Description,
		Status:              StatusPending,
		Priority:            normalized.Priority,
		DueAt:               normalized.DueAt,
		CreatedAt:           createdAt,
		UpdatedAt:           createdAt,
	}, nil
}

// NormalizeCreateDemandInput trims and validates demand input metadata.
func NormalizeCreateDemandInput(input CreateDemandInput) (CreateDemandInput, error) {
	input.ChurchID = strings.TrimSpace(input.ChurchID)
	input.MinistryID = strings.TrimSpace(input.MinistryID)
	input.EventID = strings.TrimSpace(input.EventID)
	input.ResponsibleMemberID = strings.TrimSpace(input.ResponsibleMemberID)
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	if input.ChurchID == "" {
		return CreateDemandInput{}, ErrEmptyChurchID
	}
	if input.MinistryID == "" {
		return CreateDemandInput{}, ErrEmptyMinistryID
	}
	if input.Title == "" {
		return CreateDemandInput{}, ErrEmptyTitle
	}
	if input.DueAt != nil {
		dueAt := input.DueAt.UTC()
		input.DueAt = &dueAt
	}
	return input, nil
}

// ChangeStatus applies a status update and refreshes the updated timestamp.
//
// Every transition among pending, in-progress and done is permitted, including
// reopening a done demand. The only rejected input is a status outside the
// recognized enumeration.
func ChangeStatus(d Demand, target Status, now func() time.Time) (Demand, error) {
	if now == nil {
		now = time.Now
	}
	if !target.IsValid() {
		return Demand{}, invalidStatusError(fmt.Sprintf("%d", target))
	}
	d.Status = target
	d.UpdatedAt = now().UTC()
	return d, nil
}

// AssignResponsible sets or replaces the responsible member.
// Assignment is permitted in every status.
func AssignResponsible(d Demand, memberID string, now func() time.Time) (Demand, error) {
	if now == nil {
		now = time.Now
	}
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return Demand{}, ErrEmptyResponsible
	}
	d.ResponsibleMemberID = memberID
	d.UpdatedAt = now().UTC()
	return d, nil
}

// ParseStatus maps a wire label to a Status.
func ParseStatus(raw string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "pending":
		return StatusPending, nil
	case "in_progress":
		return StatusInProgress, nil
	case "done":
		return StatusDone, nil
	default:
		return StatusUnspecified, invalidStatusError(raw)
	}
}

func invalidStatusError(raw string) error {
	return apperrors.WithMetadata(
		apperrors.CodeDemandInvalidStatus,
		fmt.Sprintf("demand status is not recognized: %s", raw),
		map[string]string{"Status": raw},
	)
}

// IsValid reports whether the status is one of the recognized lifecycle states.
func (s Status) IsValid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusDone:
		return true
	default:
		return false
	}
}

// String returns the stable wire label for the status.
func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusInProgress:
		return "in_progress"
	case StatusDone:
		return "done"
	default:
		return "unspecified"
	}
}

// Board groups a ministry's demands into kanban columns by status.
type Board struct {
	Pending    []Demand
	InProgress []Demand
	Done       []Demand
}

// BuildBoard groups demands by status and orders each column.
//
// Within a column, higher priority sorts first; ties break by creation
// timestamp ascending, then by ID for a stable order.
func BuildBoard(demands []Demand) Board {
	var board Board
	for _, d := range demands {
		switch d.Status {
		case StatusInProgress:
			board.InProgress = append(board.InProgress, d)
		case StatusDone:
			board.Done = append(board.Done, d)
		default:
			board.Pending = append(board.Pending, d)
		}
	}
	SortColumn(board.Pending)
	SortColumn(board.InProgress)
	SortColumn(board.Done)
	return board
}

// SortColumn orders one board column in place.
func SortColumn(demands []Demand) {
	sort.SliceStable(demands, func(i, j int) bool {
		if demands[i].Priority != demands[j].Priority {
			return demands[i].Priority > demands[j].Priority
		}
		if !demands[i].CreatedAt.Equal(demands[j].CreatedAt) {
			return demands[i].CreatedAt.Before(demands[j].CreatedAt)
		}
		return demands[i].ID < demands[j].ID
	})
}
