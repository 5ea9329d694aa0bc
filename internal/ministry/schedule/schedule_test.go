package schedule

import (
	"errors"
	"testing"
	"time"

	apperrors "github.com/louisbranch/shepherd.church/internal/errors"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func staticID(value string) func() (string, error) {
	return func() (string, error) { return value, nil }
}

func TestCreateScheduleStartsDraft(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 8, 30, 9, 0, 0, 0, time.UTC)
	serviceDate := time.Date(2026, 9, 6, 10, 0, 0, 0, time.UTC)
	created, err := CreateSchedule(CreateScheduleInput{
		ChurchID:    "church-1",
		MinistryID:  "ministry-1",
		ServiceDate: serviceDate,
		Notes:       " sound check at 9 ",
	}, fixedClock(now), staticID("schedule-1"))
	if err != nil {
		t.Fatalf("create schedule: %v", err)
	}
	if created.Status != StatusDraft {
		t.Fatalf("expected draft status, got %v", created.Status)
	}
	if created.Notes != "sound check at 9" {
		t.Fatalf("expected trimmed notes, got %q", created.Notes)
	}
	if !created.ServiceDate.Equal(serviceDate) {
		t.Fatalf("unexpected service date %v", created.ServiceDate)
	}
}

func TestCreateScheduleValidation(t *testing.T) {
	t.Parallel()

	serviceDate := time.Date(2026, 9, 6, 10, 0, 0, 0, time.UTC)
	tests := []struct {
		name  string
		input CreateScheduleInput
		want  error
	}{
		{"missing church", CreateScheduleInput{MinistryID: "m", ServiceDate: serviceDate}, ErrEmptyChurchID},
		{"missing ministry", CreateScheduleInput{ChurchID: "c", ServiceDate: serviceDate}, ErrEmptyMinistryID},
		{"missing date", CreateScheduleInput{ChurchID: "c", MinistryID: "m"}, ErrMissingServiceDate},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := CreateSchedule(tc.input, nil, nil)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestNewAssignmentRejectsDuplicateMember(t *testing.T) {
	t.Parallel()

	s := Schedule{
		ID: "schedule-1",
		Assignments: []Assignment{
			{ID: "assignment-1", ScheduleID: "schedule-1", MemberID: "member-1"},
		},
	}

	if _, err := NewAssignment(s, "member-2", nil, staticID("assignment-2")); err != nil {
		t.Fatalf("assign new member: %v", err)
	}

	_, err := NewAssignment(s, "member-1", nil, nil)
	if !apperrors.IsCode(err, apperrors.CodeAssignmentDuplicateMember) {
		t.Fatalf("expected duplicate member error, got %v", err)
	}
}

func TestNewAssignmentValidation(t *testing.T) {
	t.Parallel()

	if _, err := NewAssignment(Schedule{}, "member-1", nil, nil); !errors.Is(err, ErrEmptyScheduleID) {
		t.Fatalf("expected empty schedule error, got %v", err)
	}
	if _, err := NewAssignment(Schedule{ID: "schedule-1"}, "  ", nil, nil); !errors.Is(err, ErrEmptyMemberID) {
		t.Fatalf("expected empty member error, got %v", err)
	}
}

func TestSortOrdersByServiceDateAscending(t *testing.T) {
	t.Parallel()

	march := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	january := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	february := time.Date(2024, 2, 20, 0, 0, 0, 0, time.UTC)

	schedules := []Schedule{
		{ID: "s-march", ServiceDate: march},
		{ID: "s-january", ServiceDate: january},
		{ID: "s-february", ServiceDate: february},
	}
	Sort(schedules)

	want := []string{"s-january", "s-february", "s-march"}
	for i, id := range want {
		if schedules[i].ID != id {
			t.Fatalf("schedules[%d] = %s, want %s", i, schedules[i].ID, id)
		}
	}
}

func TestSortBreaksDateTiesByID(t *testing.T) {
	t.Parallel()

	date := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	schedules := []Schedule{
		{ID: "s-b", ServiceDate: date},
		{ID: "s-a", ServiceDate: date},
	}
	Sort(schedules)
	if schedules[0].ID != "s-a" || schedules[1].ID != "s-b" {
		t.Fatalf("expected tie broken by id, got %s, %s", schedules[0].ID, schedules[1].ID)
	}
}

func TestSortOrdersAssignmentsByCreation(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 5, 1, 8, 0, 0, 0, time.UTC)
	schedules := []Schedule{{
		ID:          "schedule-1",
		ServiceDate: base,
		Assignments: []Assignment{
			{ID: "assignment-late", MemberID: "m2", CreatedAt: base.Add(time.Hour)},
			{ID: "assignment-early", MemberID: "m1", CreatedAt: base},
		},
	}}
	Sort(schedules)
	if schedules[0].Assignments[0].ID != "assignment-early" {
		t.Fatalf("expected assignments ordered by creation, got %s first", schedules[0].Assignments[0].ID)
	}
}
