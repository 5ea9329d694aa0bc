// Package storage defines the persistence boundary for the ministry service.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/louisbranch/shepherd.church/internal/ministry/demand"
	"github.com/louisbranch/shepherd.church/internal/ministry/schedule"
)

var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("record not found")
	// ErrConflict indicates a write violated a uniqueness constraint.
	ErrConflict = errors.New("record conflict")
)

// Member is one entry in the church member directory.
type Member struct {
	ID       string
	ChurchID string
	Name     string
	Email    string
}

// Notification is one persisted in-app notification row.
type Notification struct {
	ID                string
	RecipientMemberID string
	Title             string
	Body              string
	Link              string
	MessageType       string
	CreatedAt         time.Time
	ReadAt            *time.Time
}

// DemandStore persists ministry demands.
type DemandStore interface {
	PutDemand(ctx context.Context, d demand.Demand) error
	GetDemand(ctx context.Context, demandID string) (demand.Demand, error)
	ListDemandsByMinistry(ctx context.Context, churchID, ministryID string) ([]demand.Demand, error)
}

// ScheduleStore persists service schedules and volunteer assignments.
//
// InsertAssignment relies on a storage uniqueness constraint over
// (schedule_id, member_id); a violation surfaces as ErrConflict. Deleting a
// schedule cascades to its assignments.
type ScheduleStore interface {
	PutSchedule(ctx context.Context, s schedule.Schedule) error
	GetSchedule(ctx context.Context, scheduleID string) (schedule.Schedule, error)
	ListSchedules(ctx context.Context, churchID, ministryID string) ([]schedule.Schedule, error)
	InsertAssignment(ctx context.Context, a schedule.Assignment) error
	GetAssignment(ctx context.Context, assignmentID string) (schedule.Assignment, error)
	DeleteAssignment(ctx context.Context, assignmentID string) error
}

// MemberStore reads and writes the member directory.
type MemberStore interface {
	PutMember(ctx context.Context, m Member) error
	GetMember(ctx context.Context, memberID string) (Member, error)
}

// NotificationStore persists in-app notifications.
type NotificationStore interface {
	PutNotification(ctx context.Context, n Notification) error
	ListNotificationsByRecipient(ctx context.Context, recipientMemberID string) ([]Notification, error)
	CountUnreadNotificationsByRecipient(ctx context.Context, recipientMemberID string) (int, error)
	MarkNotificationRead(ctx context.Context, recipientMemberID, notificationID string, readAt time.Time) (Notification, error)
}

// Store aggregates every persistence concern of the ministry service.
type Store interface {
	DemandStore
	ScheduleStore
	MemberStore
	NotificationStore
}
