// Package domain orchestrates ministry demands, schedules and notifications.
package domain

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "github.com/louisbranch/shepherd.church/internal/errors"
	"github.com/louisbranch/shepherd.church/internal/ministry/demand"
	"github.com/louisbranch/shepherd.church/internal/ministry/schedule"
	"github.com/louisbranch/shepherd.church/internal/platform/id"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/notify"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/storage"
)

// Notifier fans notification events out to delivery channels.
type Notifier interface {
	Dispatch(ctx context.Context, event notify.Event) notify.Result
}

// Service coordinates ministry workflows over storage and notifications.
type Service struct {
	store    storage.Store
	notifier Notifier
	clock    func() time.Time
	newID    func() (string, error)
}

// NewService creates a ministry service. The notifier may be nil, in which
// case assignment notifications are skipped.
func NewService(store storage.Store, notifier Notifier) *Service {
	return &Service{
		store:    store,
		notifier: notifier,
		clock:    time.Now,
		newID:    id.NewID,
	}
}

// CreateDemand creates a pending demand and notifies the responsible member
// when one is set at creation time.
func (s *Service) CreateDemand(ctx context.Context, input demand.CreateDemandInput) (demand.Demand, error) {
	d, err := demand.CreateDemand(input, s.clock, s.newID)
	if err != nil {
		return demand.Demand{}, err
	}
	if err := s.store.PutDemand(ctx, d); err != nil {
		return demand.Demand{}, mapStorageError(err, "create demand")
	}
	if d.ResponsibleMemberID != "" {
		s.notifyDemandAssigned(ctx, d)
	}
	return d, nil
}

// AssignDemand sets or replaces the responsible member and notifies them.
func (s *Service) AssignDemand(ctx context.Context, demandID, memberID string) (demand.Demand, error) {
	d, err := s.store.GetDemand(ctx, demandID)
	if err != nil {
		return demand.Demand{}, mapStorageError(err, "load demand")
	}
	d, err = demand.AssignResponsible(d, memberID, s.clock)
	if err != nil {
		return demand.Demand{}, err
	}
	if err := s.store.PutDemand(ctx, d); err != nil {
		return demand.Demand{}, mapStorageError(err, "save demand")
	}
	s.notifyDemandAssigned(ctx, d)
	return d, nil
}

// UpdateDemandStatus moves a demand to the requested lifecycle status.
func (s *Service) UpdateDemandStatus(ctx context.Context, demandID, rawStatus string) (demand.Demand, error) {
	target, err := demand.ParseStatus(rawStatus)
	if err != nil {
		return demand.Demand{}, err
	}
	d, err := s.store.GetDemand(ctx, demandID)
	if err != nil {
		return demand.Demand{}, mapStorageError(err, "load demand")
	}
	d, err = demand.ChangeStatus(d, target, s.clock)
	if err != nil {
		return demand.Demand{}, err
	}
	if err := s.store.PutDemand(ctx, d); err != nil {
		return demand.Demand{}, mapStorageError(err, "save demand")
	}
	return d, nil
}

// ListDemandBoard groups a ministry's demands into ordered kanban columns.
func (s *Service) ListDemandBoard(ctx context.Context, churchID, ministryID string) (demand.Board, error) {
	churchID = strings.TrimSpace(churchID)
	ministryID = strings.TrimSpace(ministryID)
	if churchID == "" {
		return demand.Board{}, demand.ErrEmptyChurchID
	}
	if ministryID == "" {
		return demand.Board{}, demand.ErrEmptyMinistryID
	}
	demands, err := s.store.ListDemandsByMinistry(ctx, churchID, ministryID)
	if err != nil {
		return demand.Board{}, mapStorageError(err, "list demands")
	}
	return demand.BuildBoard(demands), nil
}

// CreateSchedule creates a draft schedule with an empty roster.
func (s *Service) CreateSchedule(ctx context.Context, input schedule.CreateScheduleInput) (schedule.Schedule, error) {
	sched, err := schedule.CreateSchedule(input, s.clock, s.newID)
	if err != nil {
		return schedule.Schedule{}, err
	}
	if err := s.store.PutSchedule(ctx, sched); err != nil {
		return schedule.Schedule{}, mapStorageError(err, "create schedule")
	}
	return sched, nil
}

// AssignVolunteer adds a volunteer to a schedule roster and notifies them.
// Assigning the same member twice returns a duplicate assignment error.
func (s *Service) AssignVolunteer(ctx context.Context, scheduleID, memberID string) (schedule.Schedule, error) {
	sched, err := s.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return schedule.Schedule{}, mapStorageError(err, "load schedule")
	}
	assignment, err := schedule.NewAssignment(sched, memberID, s.clock, s.newID)
	if err != nil {
		return schedule.Schedule{}, err
	}
	if err := s.store.InsertAssignment(ctx, assignment); err != nil {
		if errors.Is(err, storage.ErrConflict) {
			return schedule.Schedule{}, apperrors.WithMetadata(
				apperrors.CodeAssignmentDuplicateMember,
				fmt.Sprintf("member %s is already assigned to schedule %s", assignment.MemberID, sched.ID),
				map[string]string{"MemberID": assignment.MemberID, "ScheduleID": sched.ID},
			)
		}
		return schedule.Schedule{}, mapStorageError(err, "insert assignment")
	}

	s.notifyVolunteerAssigned(ctx, sched, assignment.MemberID)

	sched, err = s.store.GetSchedule(ctx, scheduleID)
	if err != nil {
		return schedule.Schedule{}, mapStorageError(err, "reload schedule")
	}
	return sched, nil
}

// RemoveVolunteer removes one assignment from a schedule roster.
// Removing an assignment that does not exist is an error, not a no-op.
func (s *Service) RemoveVolunteer(ctx context.Context, assignmentID string) error {
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return apperrors.New(apperrors.CodeAssignmentEmptyID, "assignment id is required")
	}
	if err := s.store.DeleteAssignment(ctx, assignmentID); err != nil {
		return mapStorageError(err, "delete assignment")
	}
	return nil
}

// ListSchedules returns a ministry's schedules ordered by ascending service
// date with rosters resolved.
func (s *Service) ListSchedules(ctx context.Context, churchID, ministryID string) ([]schedule.Schedule, error) {
	churchID = strings.TrimSpace(churchID)
	ministryID = strings.TrimSpace(ministryID)
	if churchID == "" {
		return nil, schedule.ErrEmptyChurchID
	}
	if ministryID == "" {
		return nil, schedule.ErrEmptyMinistryID
	}
	schedules, err := s.store.ListSchedules(ctx, churchID, ministryID)
	if err != nil {
		return nil, mapStorageError(err, "list schedules")
	}
	schedule.Sort(schedules)
	return schedules, nil
}

// UpsertMember writes one entry in the member directory.
func (s *Service) UpsertMember(ctx context.Context, m storage.Member) error {
	m.ID = strings.TrimSpace(m.ID)
	m.ChurchID = strings.TrimSpace(m.ChurchID)
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	if m.ID == "" {
		return apperrors.New(apperrors.CodeMemberEmptyID, "member id is required")
	}
	if err := s.store.PutMember(ctx, m); err != nil {
		return mapStorageError(err, "save member")
	}
	return nil
}

// GetMember loads one member directory entry.
func (s *Service) GetMember(ctx context.Context, memberID string) (storage.Member, error) {
	m, err := s.store.GetMember(ctx, memberID)
	if err != nil {
		return storage.Member{}, mapStorageError(err, "load member")
	}
	return m, nil
}

func (s *Service) notifyDemandAssigned(ctx context.Context, d demand.Demand) {
	if s.notifier == nil {
		return
	}
	event := notify.Event{
		RecipientMemberID: d.ResponsibleMemberID,
		Title:             "You have a new task",
		Body:              fmt.Sprintf("You are now responsible for %q.", d.Title),
		Link:              fmt.Sprintf("/ministries/%s/demands/%s", d.MinistryID, d.ID),
		MessageType:       notify.MessageTypeDemandAssigned,
	}
	if member, err := s.store.GetMember(ctx, d.ResponsibleMemberID); err == nil {
		event.RecipientEmail = member.Email
	}
	s.notifier.Dispatch(ctx, event)
}

func (s *Service) notifyVolunteerAssigned(ctx context.Context, sched schedule.Schedule, memberID string) {
	if s.notifier == nil {
		return
	}
	event := notify.Event{
		RecipientMemberID: memberID,
		Title:             "You are on the roster",
		Body: fmt.Sprintf(
			"You were scheduled to serve on %s.",
			sched.ServiceDate.Format("2006-01-02"),
		),
		Link:        fmt.Sprintf("/ministries/%s/schedules/%s", sched.MinistryID, sched.ID),
		MessageType: notify.MessageTypeVolunteerAssigned,
	}
	if member, err := s.store.GetMember(ctx, memberID); err == nil {
		event.RecipientEmail = member.Email
	}
	s.notifier.Dispatch(ctx, event)
}

func mapStorageError(err error, operation string) error {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		return apperrors.New(apperrors.CodeNotFound, operation+": record not found")
	case errors.Is(err, storage.ErrConflict):
		return apperrors.Wrap(apperrors.CodeStoreUnavailable, operation+": conflicting write", err)
	default:
		return apperrors.Wrap(apperrors.CodeStoreUnavailable, operation, err)
	}
}
