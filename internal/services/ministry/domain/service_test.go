package domain

import (
	"context"
	"fmt"
	"testing"
	"time"

	"google.golang.org/grpc/codes"

	apperrors "github.com/louisbranch/shepherd.church/internal/errors"
	"github.com/louisbranch/shepherd.church/internal/ministry/demand"
	"github.com/louisbranch/shepherd.church/internal/ministry/schedule"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/notify"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/storage"
)

type fakeStore struct {
	demands       map[string]demand.Demand
	schedules     map[string]schedule.Schedule
	assignments   map[string]schedule.Assignment
	members       map[string]storage.Member
	notifications map[string]storage.Notification
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		demands:       make(map[string]demand.Demand),
		schedules:     make(map[string]schedule.Schedule),
		assignments:   make(map[string]schedule.Assignment),
		members:       make(map[string]storage.Member),
		notifications: make(map[string]storage.Notification),
	}
}

func (f *fakeStore) PutDemand(_ context.Context, d demand.Demand) error {
	f.demands[d.ID] = d
	return nil
}

func (f *fakeStore) GetDemand(_ context.Context, demandID string) (demand.Demand, error) {
	d, ok := f.demands[demandID]
	if !ok {
		return demand.Demand{}, storage.ErrNotFound
	}
	return d, nil
}

func (f *fakeStore) ListDemandsByMinistry(_ context.Context, churchID, ministryID string) ([]demand.Demand, error) {
	var out []demand.Demand
	for _, d := range f.demands {
		if d.ChurchID == churchID && d.MinistryID == ministryID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) PutSchedule(_ context.Context, s schedule.Schedule) error {
	f.schedules[s.ID] = s
	return nil
}

func (f *fakeStore) GetSchedule(_ context.Context, scheduleID string) (schedule.Schedule, error) {
	s, ok := f.schedules[scheduleID]
	if !ok {
		return schedule.Schedule{}, storage.ErrNotFound
	}
	s.Assignments = nil
	for _, a := range f.assignments {
		if a.ScheduleID == scheduleID {
			if m, ok := f.members[a.MemberID]; ok {
				a.MemberName = m.Name
				a.MemberEmail = m.Email
			}
			s.Assignments = append(s.Assignments, a)
		}
	}
	return s, nil
}

func (f *fakeStore) ListSchedules(_ context.Context, churchID, ministryID string) ([]schedule.Schedule, error) {
	var out []schedule.Schedule
	for id, s := range f.schedules {
		if s.ChurchID == churchID && s.MinistryID == ministryID {
			loaded, _ := f.GetSchedule(context.Background(), id)
			out = append(out, loaded)
		}
	}
	return out, nil
}

func (f *fakeStore) InsertAssignment(_ context.Context, a schedule.Assignment) error {
	for _, existing := range f.assignments {
		if existing.ScheduleID == a.ScheduleID && existing.MemberID == a.MemberID {
			return storage.ErrConflict
		}
	}
	f.assignments[a.ID] = a
	return nil
}

func (f *fakeStore) GetAssignment(_ context.Context, assignmentID string) (schedule.Assignment, error) {
	a, ok := f.assignments[assignmentID]
	if !ok {
		return schedule.Assignment{}, storage.ErrNotFound
	}
	return a, nil
}

func (f *fakeStore) DeleteAssignment(_ context.Context, assignmentID string) error {
	if _, ok := f.assignments[assignmentID]; !ok {
		return storage.ErrNotFound
	}
	delete(f.assignments, assignmentID)
	return nil
}

func (f *fakeStore) PutMember(_ context.Context, m storage.Member) error {
	f.members[m.ID] = m
	return nil
}

func (f *fakeStore) GetMember(_ context.Context, memberID string) (storage.Member, error) {
	m, ok := f.members[memberID]
	if !ok {
		return storage.Member{}, storage.ErrNotFound
	}
	return m, nil
}

func (f *fakeStore) PutNotification(_ context.Context, n storage.Notification) error {
	f.notifications[n.ID] = n
	return nil
}

func (f *fakeStore) ListNotificationsByRecipient(_ context.Context, recipientMemberID string) ([]storage.Notification, error) {
	var out []storage.Notification
	for _, n := range f.notifications {
		if n.RecipientMemberID == recipientMemberID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeStore) CountUnreadNotificationsByRecipient(_ context.Context, recipientMemberID string) (int, error) {
	count := 0
	for _, n := range f.notifications {
		if n.RecipientMemberID == recipientMemberID && n.ReadAt == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeStore) MarkNotificationRead(_ context.Context, recipientMemberID, notificationID string, readAt time.Time) (storage.Notification, error) {
	n, ok := f.notifications[notificationID]
	if !ok || n.RecipientMemberID != recipientMemberID {
		return storage.Notification{}, storage.ErrNotFound
	}
	n.ReadAt = &readAt
	f.notifications[notificationID] = n
	return n, nil
}

type fakeNotifier struct {
	events []notify.Event
}

func (f *fakeNotifier) Dispatch(_ context.Context, event notify.Event) notify.Result {
	f.events = append(f.events, event)
	return notify.Result{Stored: true}
}

func newTestService(store *fakeStore, notifier Notifier) *Service {
	s := NewService(store, notifier)
	current := time.Date(2026, 6, 1, 9, 0, 0, 0, time.UTC)
	s.clock = func() time.Time {
		current = current.Add(time.Second)
		return current
	}
	ids := 0
	s.newID = func() (string, error) {
		ids++
		return fmt.Sprintf("id-%d", ids), nil
	}
	return s
}

func TestCreateDemandStartsPending(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store, nil)

	d, err := svc.CreateDemand(context.Background(), demand.CreateDemandInput{
		ChurchID:   "church-1",
		MinistryID: "ministry-1",
		Title:      "  Prepare slides  ",
	})
	if err != nil {
		t.Fatalf("create demand: %v", err)
	}
	if d.Status != demand.StatusPending {
		t.Fatalf("expected pending, got %v", d.Status)
	}
	if d.Title != "Prepare slides" {
		t.Fatalf("expected trimmed title, got %q", d.Title)
	}
	if _, ok := store.demands[d.ID]; !ok {
		t.Fatal("demand not persisted")
	}
}

func TestCreateDemandValidation(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore(), nil)
	_, err := svc.CreateDemand(context.Background(), demand.CreateDemandInput{
		ChurchID:   "church-1",
		MinistryID: "ministry-1",
	})
	if !apperrors.IsCode(err, apperrors.CodeDemandEmptyTitle) {
		t.Fatalf("expected empty title code, got %v", err)
	}
}

func TestCreateDemandNotifiesResponsible(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.members["member-1"] = storage.Member{ID: "member-1", Email: "ana@example.com"}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	_, err := svc.CreateDemand(context.Background(), demand.CreateDemandInput{
		ChurchID:            "church-1",
		MinistryID:          "ministry-1",
		Title:               "Prepare slides",
		ResponsibleMemberID: "member-1",
	})
	if err != nil {
		t.Fatalf("create demand: %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}
	event := notifier.events[0]
	if event.RecipientMemberID != "member-1" || event.RecipientEmail != "ana@example.com" {
		t.Fatalf("unexpected event: %+v", event)
	}
	if event.MessageType != notify.MessageTypeDemandAssigned {
		t.Fatalf("unexpected message type: %s", event.MessageType)
	}
}

func TestAssignDemand(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	d, err := svc.CreateDemand(context.Background(), demand.CreateDemandInput{
		ChurchID:   "church-1",
		MinistryID: "ministry-1",
		Title:      "Prepare slides",
	})
	if err != nil {
		t.Fatalf("create demand: %v", err)
	}
	if len(notifier.events) != 0 {
		t.Fatal("no notification expected without responsible")
	}

	updated, err := svc.AssignDemand(context.Background(), d.ID, "member-1")
	if err != nil {
		t.Fatalf("assign demand: %v", err)
	}
	if updated.ResponsibleMemberID != "member-1" {
		t.Fatalf("unexpected responsible: %s", updated.ResponsibleMemberID)
	}
	if !updated.UpdatedAt.After(d.UpdatedAt) {
		t.Fatal("expected updated timestamp to advance")
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}

	if _, err := svc.AssignDemand(context.Background(), "missing", "member-1"); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestUpdateDemandStatusTransitions(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store, nil)

	d, err := svc.CreateDemand(context.Background(), demand.CreateDemandInput{
		ChurchID:   "church-1",
		MinistryID: "ministry-1",
		Title:      "Prepare slides",
	})
	if err != nil {
		t.Fatalf("create demand: %v", err)
	}

	for _, target := range []string{"in_progress", "done", "pending", "done"} {
		updated, err := svc.UpdateDemandStatus(context.Background(), d.ID, target)
		if err != nil {
			t.Fatalf("update to %s: %v", target, err)
		}
		if updated.Status.String() != target {
			t.Fatalf("expected %s, got %s", target, updated.Status)
		}
	}

	if _, err := svc.UpdateDemandStatus(context.Background(), d.ID, "archived"); !apperrors.IsCode(err, apperrors.CodeDemandInvalidStatus) {
		t.Fatalf("expected invalid status code, got %v", err)
	}
	loaded, err := svc.store.GetDemand(context.Background(), d.ID)
	if err != nil {
		t.Fatalf("reload demand: %v", err)
	}
	if loaded.Status != demand.StatusDone {
		t.Fatalf("rejected update must not change status, got %v", loaded.Status)
	}
}

func TestListDemandBoardOrdering(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store, nil)
	ctx := context.Background()

	low, err := svc.CreateDemand(ctx, demand.CreateDemandInput{
		ChurchID: "church-1", MinistryID: "ministry-1", Title: "low", Priority: demand.PriorityLow,
	})
	if err != nil {
		t.Fatalf("create low: %v", err)
	}
	high, err := svc.CreateDemand(ctx, demand.CreateDemandInput{
		ChurchID: "church-1", MinistryID: "ministry-1", Title: "high", Priority: demand.PriorityHigh,
	})
	if err != nil {
		t.Fatalf("create high: %v", err)
	}
	done, err := svc.CreateDemand(ctx, demand.CreateDemandInput{
		ChurchID: "church-1", MinistryID: "ministry-1", Title: "finished",
	})
	if err != nil {
		t.Fatalf("create finished: %v", err)
	}
	if _, err := svc.UpdateDemandStatus(ctx, done.ID, "done"); err != nil {
		t.Fatalf("finish demand: %v", err)
	}

	board, err := svc.ListDemandBoard(ctx, "church-1", "ministry-1")
	if err != nil {
		t.Fatalf("list board: %v", err)
	}
	if len(board.Pending) != 2 || len(board.Done) != 1 || len(board.InProgress) != 0 {
		t.Fatalf("unexpected columns: %d/%d/%d", len(board.Pending), len(board.InProgress), len(board.Done))
	}
	if board.Pending[0].ID != high.ID || board.Pending[1].ID != low.ID {
		t.Fatalf("expected priority ordering, got %s then %s", board.Pending[0].ID, board.Pending[1].ID)
	}

	if _, err := svc.ListDemandBoard(ctx, "", "ministry-1"); !apperrors.IsCode(err, apperrors.CodeDemandEmptyChurchID) {
		t.Fatalf("expected empty church code, got %v", err)
	}
}

func TestCreateScheduleStartsDraft(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)

	sched, err := svc.CreateSchedule(context.Background(), schedule.CreateScheduleInput{
		ChurchID:    "church-1",
		MinistryID:  "ministry-1",
		ServiceDate: time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	if sched.Status != schedule.StatusDraft {
		t.Fatalf("expected draft, got %v", sched.Status)
	}
	if len(sched.Assignments) != 0 {
		t.Fatal("expected empty roster")
	}
	if len(notifier.events) != 0 {
		t.Fatal("schedule creation must not notify")
	}

	_, err = svc.CreateSchedule(context.Background(), schedule.CreateScheduleInput{
		ChurchID:   "church-1",
		MinistryID: "ministry-1",
	})
	if !apperrors.IsCode(err, apperrors.CodeScheduleMissingServiceDate) {
		t.Fatalf("expected missing service date code, got %v", err)
	}
}

func TestAssignVolunteer(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	store.members["member-1"] = storage.Member{ID: "member-1", Name: "Ana", Email: "ana@example.com"}
	notifier := &fakeNotifier{}
	svc := newTestService(store, notifier)
	ctx := context.Background()

	sched, err := svc.CreateSchedule(ctx, schedule.CreateScheduleInput{
		ChurchID:    "church-1",
		MinistryID:  "ministry-1",
		ServiceDate: time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}

	updated, err := svc.AssignVolunteer(ctx, sched.ID, "member-1")
	if err != nil {
		t.Fatalf("assign volunteer: %v", err)
	}
	if len(updated.Assignments) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(updated.Assignments))
	}
	if updated.Assignments[0].MemberName != "Ana" {
		t.Fatalf("expected joined member name, got %q", updated.Assignments[0].MemberName)
	}
	if len(notifier.events) != 1 {
		t.Fatalf("expected 1 notification, got %d", len(notifier.events))
	}
	if notifier.events[0].MessageType != notify.MessageTypeVolunteerAssigned {
		t.Fatalf("unexpected message type: %s", notifier.events[0].MessageType)
	}

	if _, err := svc.AssignVolunteer(ctx, sched.ID, "member-1"); !apperrors.IsCode(err, apperrors.CodeAssignmentDuplicateMember) {
		t.Fatalf("expected duplicate member code, got %v", err)
	}
	if len(notifier.events) != 1 {
		t.Fatal("duplicate assignment must not notify")
	}

	if _, err := svc.AssignVolunteer(ctx, "missing", "member-1"); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found code, got %v", err)
	}
}

func TestRemoveVolunteer(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store, nil)
	ctx := context.Background()

	sched, err := svc.CreateSchedule(ctx, schedule.CreateScheduleInput{
		ChurchID:    "church-1",
		MinistryID:  "ministry-1",
		ServiceDate: time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	updated, err := svc.AssignVolunteer(ctx, sched.ID, "member-1")
	if err != nil {
		t.Fatalf("assign volunteer: %v", err)
	}
	assignmentID := updated.Assignments[0].ID

	if err := svc.RemoveVolunteer(ctx, assignmentID); err != nil {
		t.Fatalf("remove volunteer: %v", err)
	}
	if err := svc.RemoveVolunteer(ctx, assignmentID); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found on second removal, got %v", err)
	}
}

func TestRemoveVolunteerRequiresAssignmentID(t *testing.T) {
	t.Parallel()

	svc := newTestService(newFakeStore(), nil)
	err := svc.RemoveVolunteer(context.Background(), "  ")
	if !apperrors.IsCode(err, apperrors.CodeAssignmentEmptyID) {
		t.Fatalf("expected empty assignment id code, got %v", err)
	}
	if apperrors.GetCode(err).GRPCCode() != codes.InvalidArgument {
		t.Fatalf("missing assignment id must map to invalid argument, got %v", apperrors.GetCode(err).GRPCCode())
	}
}

func TestListSchedulesOrdering(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store, nil)
	ctx := context.Background()

	dates := []time.Time{
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		_, err := svc.CreateSchedule(ctx, schedule.CreateScheduleInput{
			ChurchID:    "church-1",
			MinistryID:  "ministry-1",
			ServiceDate: date,
		})
		if err != nil {
			t.Fatalf("create schedule: %v", err)
		}
	}

	schedules, err := svc.ListSchedules(ctx, "church-1", "ministry-1")
	if err != nil {
		t.Fatalf("list schedules: %v", err)
	}
	if len(schedules) != 3 {
		t.Fatalf("expected 3 schedules, got %d", len(schedules))
	}
	want := []time.Time{dates[1], dates[2], dates[0]}
	for i := range want {
		if !schedules[i].ServiceDate.Equal(want[i]) {
			t.Fatalf("unexpected order at %d: %v", i, schedules[i].ServiceDate)
		}
	}
}

func TestUpsertMember(t *testing.T) {
	t.Parallel()

	store := newFakeStore()
	svc := newTestService(store, nil)
	ctx := context.Background()

	member := storage.Member{ID: " member-1 ", ChurchID: "church-1", Name: " Ana ", Email: " ana@example.com "}
	if err := svc.UpsertMember(ctx, member); err != nil {
		t.Fatalf("upsert member: %v", err)
	}
	loaded, err := svc.GetMember(ctx, "member-1")
	if err != nil {
		t.Fatalf("get member: %v", err)
	}
	if loaded.Name != "Ana" || loaded.Email != "ana@example.com" {
		t.Fatalf("expected trimmed fields, got %+v", loaded)
	}

	if _, err := svc.GetMember(ctx, "missing"); !apperrors.IsCode(err, apperrors.CodeNotFound) {
		t.Fatalf("expected not found code, got %v", err)
	}

	err = svc.UpsertMember(ctx, storage.Member{ChurchID: "church-1", Name: "Ana"})
	if !apperrors.IsCode(err, apperrors.CodeMemberEmptyID) {
		t.Fatalf("expected empty member id code, got %v", err)
	}
	if apperrors.GetCode(err).GRPCCode() != codes.InvalidArgument {
		t.Fatalf("missing member id must map to invalid argument, got %v", apperrors.GetCode(err).GRPCCode())
	}
}
