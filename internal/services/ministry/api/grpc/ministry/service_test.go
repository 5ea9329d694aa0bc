package ministry

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	grpcmetadata "google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	ministryv1 "github.com/louisbranch/shepherd.church/api/gen/go/ministry/v1"
	"github.com/louisbranch/shepherd.church/internal/ministry/demand"
	"github.com/louisbranch/shepherd.church/internal/ministry/schedule"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/domain"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/storage"
)

type fakeStore struct {
	demands     map[string]demand.Demand
	schedules   map[string]schedule.Schedule
	assignments map[string]schedule.Assignment
	members     map[string]storage.Member
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		demands:     make(map[string]demand.Demand),
		schedules:   make(map[string]schedule.Schedule),
		assignments: make(map[string]schedule.Assignment),
		members:     make(map[string]storage.Member),
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

func (f *fakeStore) PutNotification(_ context.Context, _ storage.Notification) error {
	return nil
}

func (f *fakeStore) ListNotificationsByRecipient(_ context.Context, _ string) ([]storage.Notification, error) {
	return nil, nil
}

func (f *fakeStore) CountUnreadNotificationsByRecipient(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func (f *fakeStore) MarkNotificationRead(_ context.Context, _, _ string, _ time.Time) (storage.Notification, error) {
	return storage.Notification{}, storage.ErrNotFound
}

func newTestService() (*Service, *fakeStore) {
	store := newFakeStore()
	return NewService(domain.NewService(store, nil)), store
}

func callerContext(roleLabel string) context.Context {
	md := grpcmetadata.Pairs(
		"x-user-id", "user-1",
		"x-church-id", "church-1",
		"x-user-role", roleLabel,
	)
	return grpcmetadata.NewIncomingContext(context.Background(), md)
}

func TestCreateDemandRequiresIdentity(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	_, err := svc.CreateDemand(context.Background(), &ministryv1.CreateDemandRequest{
		MinistryId: "ministry-1",
		Title:      "Prepare slides",
	})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestCreateDemandRequiresCapability(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	_, err := svc.CreateDemand(callerContext("member"), &ministryv1.CreateDemandRequest{
		MinistryId: "ministry-1",
		Title:      "Prepare slides",
	})
	if status.Code(err) != codes.PermissionDenied {
		t.Fatalf("expected permission denied, got %v", err)
	}
}

func TestCreateDemand(t *testing.T) {
	t.Parallel()

	svc, store := newTestService()
	resp, err := svc.CreateDemand(callerContext("ministry_leader"), &ministryv1.CreateDemandRequest{
		MinistryId: "ministry-1",
		Title:      "Prepare slides",
		Priority:   ministryv1.DemandPriority_DEMAND_PRIORITY_HIGH,
	})
	if err != nil {
		t.Fatalf("create demand: %v", err)
	}
	d := resp.GetDemand()
	if d.GetStatus() != "pending" {
		t.Fatalf("expected pending, got %s", d.GetStatus())
	}
	if d.GetChurchId() != "church-1" {
		t.Fatalf("expected caller church, got %s", d.GetChurchId())
	}
	if _, ok := store.demands[d.GetId()]; !ok {
		t.Fatal("demand not persisted")
	}
}

func TestCreateDemandValidation(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	_, err := svc.CreateDemand(callerContext("administrator"), &ministryv1.CreateDemandRequest{
		MinistryId: "ministry-1",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}

func TestUpdateDemandStatus(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := callerContext("ministry_leader")

	created, err := svc.CreateDemand(ctx, &ministryv1.CreateDemandRequest{
		MinistryId: "ministry-1",
		Title:      "Prepare slides",
	})
	if err != nil {
		t.Fatalf("create demand: %v", err)
	}

	updated, err := svc.UpdateDemandStatus(ctx, &ministryv1.UpdateDemandStatusRequest{
		DemandId: created.GetDemand().GetId(),
		Status:   "in_progress",
	})
	if err != nil {
		t.Fatalf("update status: %v", err)
	}
	if updated.GetDemand().GetStatus() != "in_progress" {
		t.Fatalf("expected in_progress, got %s", updated.GetDemand().GetStatus())
	}

	_, err = svc.UpdateDemandStatus(ctx, &ministryv1.UpdateDemandStatusRequest{
		DemandId: created.GetDemand().GetId(),
		Status:   "archived",
	})
	if status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument for bad status, got %v", err)
	}

	_, err = svc.UpdateDemandStatus(ctx, &ministryv1.UpdateDemandStatusRequest{
		DemandId: "missing",
		Status:   "done",
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestListDemandBoard(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := callerContext("ministry_leader")

	for _, title := range []string{"a", "b"} {
		if _, err := svc.CreateDemand(ctx, &ministryv1.CreateDemandRequest{
			MinistryId: "ministry-1",
			Title:      title,
		}); err != nil {
			t.Fatalf("create demand %s: %v", title, err)
		}
	}

	board, err := svc.ListDemandBoard(ctx, &ministryv1.ListDemandBoardRequest{MinistryId: "ministry-1"})
	if err != nil {
		t.Fatalf("list board: %v", err)
	}
	if len(board.GetPending()) != 2 || len(board.GetInProgress()) != 0 || len(board.GetDone()) != 0 {
		t.Fatalf("unexpected board: %+v", board)
	}
}

func TestAssignVolunteerDuplicate(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := callerContext("ministry_leader")

	created, err := svc.CreateSchedule(ctx, &ministryv1.CreateScheduleRequest{
		MinistryId:  "ministry-1",
		ServiceDate: timestamppb.New(time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	scheduleID := created.GetSchedule().GetId()
	if created.GetSchedule().GetStatus() != "draft" {
		t.Fatalf("expected draft, got %s", created.GetSchedule().GetStatus())
	}

	first, err := svc.AssignVolunteer(ctx, &ministryv1.AssignVolunteerRequest{
		ScheduleId: scheduleID,
		MemberId:   "member-1",
	})
	if err != nil {
		t.Fatalf("assign volunteer: %v", err)
	}
	if len(first.GetSchedule().GetAssignments()) != 1 {
		t.Fatalf("expected 1 assignment, got %d", len(first.GetSchedule().GetAssignments()))
	}

	_, err = svc.AssignVolunteer(ctx, &ministryv1.AssignVolunteerRequest{
		ScheduleId: scheduleID,
		MemberId:   "member-1",
	})
	if status.Code(err) != codes.AlreadyExists {
		t.Fatalf("expected already exists, got %v", err)
	}
}

func TestRemoveVolunteer(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := callerContext("ministry_leader")

	created, err := svc.CreateSchedule(ctx, &ministryv1.CreateScheduleRequest{
		MinistryId:  "ministry-1",
		ServiceDate: timestamppb.New(time.Date(2026, 7, 5, 0, 0, 0, 0, time.UTC)),
	})
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	assigned, err := svc.AssignVolunteer(ctx, &ministryv1.AssignVolunteerRequest{
		ScheduleId: created.GetSchedule().GetId(),
		MemberId:   "member-1",
	})
	if err != nil {
		t.Fatalf("assign volunteer: %v", err)
	}
	assignmentID := assigned.GetSchedule().GetAssignments()[0].GetId()

	if _, err := svc.RemoveVolunteer(ctx, &ministryv1.RemoveVolunteerRequest{AssignmentId: assignmentID}); err != nil {
		t.Fatalf("remove volunteer: %v", err)
	}
	_, err = svc.RemoveVolunteer(ctx, &ministryv1.RemoveVolunteerRequest{AssignmentId: assignmentID})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected not found on second removal, got %v", err)
	}
}

func TestListSchedulesOrdered(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	ctx := callerContext("pastor")

	dates := []time.Time{
		time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
	}
	for _, date := range dates {
		if _, err := svc.CreateSchedule(ctx, &ministryv1.CreateScheduleRequest{
			MinistryId:  "ministry-1",
			ServiceDate: timestamppb.New(date),
		}); err != nil {
			t.Fatalf("create schedule: %v", err)
		}
	}

	resp, err := svc.ListSchedules(ctx, &ministryv1.ListSchedulesRequest{MinistryId: "ministry-1"})
	if err != nil {
		t.Fatalf("list schedules: %v", err)
	}
	schedules := resp.GetSchedules()
	if len(schedules) != 3 {
		t.Fatalf("expected 3 schedules, got %d", len(schedules))
	}
	want := []time.Time{dates[1], dates[2], dates[0]}
	for i := range want {
		if !schedules[i].GetServiceDate().AsTime().Equal(want[i]) {
			t.Fatalf("unexpected order at %d: %v", i, schedules[i].GetServiceDate().AsTime())
		}
	}
}

func TestNilRequestsRejected(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService()
	if _, err := svc.CreateDemand(callerContext("administrator"), nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
	if _, err := svc.ListSchedules(callerContext("administrator"), nil); status.Code(err) != codes.InvalidArgument {
		t.Fatalf("expected invalid argument, got %v", err)
	}
}
