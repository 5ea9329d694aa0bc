// Package sqlite provides SQLite-backed persistence for the ministry service.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/louisbranch/shepherd.church/internal/ministry/demand"
	"github.com/louisbranch/shepherd.church/internal/ministry/schedule"
	"github.com/louisbranch/shepherd.church/internal/platform/storage/sqlitemigrate"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/storage"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store provides SQLite-backed persistence for ministry state.
type Store struct {
	sqlDB *sql.DB
}

func toMillis(value time.Time) int64 {
	return value.UTC().UnixMilli()
}

func fromMillis(value int64) time.Time {
	return time.UnixMilli(value).UTC()
}

// Open opens a ministry SQLite store at the provided path.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_busy_timeout=5000&_synchronous=NORMAL&_pragma=foreign_keys(ON)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := ensureForeignKeysEnabled(sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}

	store := &Store{sqlDB: sqlDB}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS, ""); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return store, nil
}

// Close closes the underlying SQLite database.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

func ensureForeignKeysEnabled(db *sql.DB) error {
	if db == nil {
		return fmt.Errorf("sqlite db is required")
	}
	var enabled int
	if err := db.QueryRow("PRAGMA foreign_keys").Scan(&enabled); err != nil {
		return fmt.Errorf("check sqlite foreign key pragma: %w", err)
	}
	if enabled != 1 {
		return fmt.Errorf("sqlite foreign keys are disabled")
	}
	return nil
}

// PutDemand upserts one demand row.
func (s *Store) PutDemand(ctx context.Context, d demand.Demand) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(d.ID) == "" {
		return fmt.Errorf("demand id is required")
	}

	var dueAt sql.NullInt64
	if d.DueAt != nil {
		dueAt = sql.NullInt64{Int64: toMillis(*d.DueAt), Valid: true}
	}

	_, err := s.sqlDB.ExecContext(ctx, `
	INSERT INTO demands (
		id, church_id, ministry_id, event_id, responsible_member_id, title, description,
		status, priority, due_at, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		church_id = excluded.church_id,
		ministry_id = excluded.ministry_id,
		event_id = excluded.event_id,
		responsible_member_id = excluded.responsible_member_id,
		title = excluded.title,
		description = excluded.description,
		status = excluded.status,
		priority = excluded.priority,
		due_at = excluded.due_at,
		created_at = excluded.created_at,
		updated_at = excluded.updated_at
	`,
		d.ID,
		d.ChurchID,
		d.MinistryID,
		d.EventID,
		d.ResponsibleMemberID,
		d.Title,
		d.Description,
		d.Status.String(),
		int(d.Priority),
		dueAt,
		toMillis(d.CreatedAt),
		toMillis(d.UpdatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put demand: %w", err)
	}
	return nil
}

// GetDemand loads one demand by id.
func (s *Store) GetDemand(ctx context.Context, demandID string) (demand.Demand, error) {
	if err := ctx.Err(); err != nil {
		return demand.Demand{}, err
	}
	if s == nil || s.sqlDB == nil {
		return demand.Demand{}, fmt.Errorf("storage is not configured")
	}
	demandID = strings.TrimSpace(demandID)
	if demandID == "" {
		return demand.Demand{}, fmt.Errorf("demand id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, church_id, ministry_id, event_id, responsible_member_id, title, description,
       status, priority, due_at, created_at, updated_at
FROM demands
WHERE id = ?
`, demandID)
	d, err := scanDemand(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return demand.Demand{}, storage.ErrNotFound
		}
		return demand.Demand{}, fmt.Errorf("get demand: %w", err)
	}
	return d, nil
}

// ListDemandsByMinistry lists every demand owned by one ministry.
func (s *Store) ListDemandsByMinistry(ctx context.Context, churchID, ministryID string) ([]demand.Demand, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	churchID = strings.TrimSpace(churchID)
	ministryID = strings.TrimSpace(ministryID)
	if churchID == "" {
		return nil, fmt.Errorf("church id is required")
	}
	if ministryID == "" {
		return nil, fmt.Errorf("ministry id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, church_id, ministry_id, event_id, responsible_member_id, title, description,
       status, priority, due_at, created_at, updated_at
FROM demands
WHERE church_id = ? AND ministry_id = ?
ORDER BY created_at ASC, id ASC
`, churchID, ministryID)
	if err != nil {
		return nil, fmt.Errorf("list demands: %w", err)
	}
	defer rows.Close()

	var demands []demand.Demand
	for rows.Next() {
		d, scanErr := scanDemand(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("scan demand row: %w", scanErr)
		}
		demands = append(demands, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate demand rows: %w", err)
	}
	return demands, nil
}

// PutSchedule upserts one schedule row. Assignments are managed separately.
func (s *Store) PutSchedule(ctx context.Context, sched schedule.Schedule) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(sched.ID) == "" {
		return fmt.Errorf("schedule id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
	INSERT INTO schedules (
		id, church_id, ministry_id, event_id, notes, status, service_date, created_at, updated_at
	) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		church_id = excluded.church_id,
		ministry_id = excluded.ministry_id,
		event_id = excluded.event_id,
		notes = excluded.notes,
		status = excluded.status,
		service_date = excluded.service_date,
		created_at = excluded.created_at,
		updated_at = excluded.updated_at
	`,
		sched.ID,
		sched.ChurchID,
		sched.MinistryID,
		sched.EventID,
		sched.Notes,
		sched.Status.String(),
		toMillis(sched.ServiceDate),
		toMillis(sched.CreatedAt),
		toMillis(sched.UpdatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put schedule: %w", err)
	}
	return nil
}

// GetSchedule loads one schedule with its roster resolved.
func (s *Store) GetSchedule(ctx context.Context, scheduleID string) (schedule.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return schedule.Schedule{}, err
	}
	if s == nil || s.sqlDB == nil {
		return schedule.Schedule{}, fmt.Errorf("storage is not configured")
	}
	scheduleID = strings.TrimSpace(scheduleID)
	if scheduleID == "" {
		return schedule.Schedule{}, fmt.Errorf("schedule id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, church_id, ministry_id, event_id, notes, status, service_date, created_at, updated_at
FROM schedules
WHERE id = ?
`, scheduleID)
	sched, err := scanSchedule(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schedule.Schedule{}, storage.ErrNotFound
		}
		return schedule.Schedule{}, fmt.Errorf("get schedule: %w", err)
	}

	assignments, err := s.listAssignmentsBySchedule(ctx, scheduleID)
	if err != nil {
		return schedule.Schedule{}, err
	}
	sched.Assignments = assignments
	return sched, nil
}

// ListSchedules lists one ministry's schedules ordered by ascending service
// date with rosters resolved.
func (s *Store) ListSchedules(ctx context.Context, churchID, ministryID string) ([]schedule.Schedule, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	churchID = strings.TrimSpace(churchID)
	ministryID = strings.TrimSpace(ministryID)
	if churchID == "" {
		return nil, fmt.Errorf("church id is required")
	}
	if ministryID == "" {
		return nil, fmt.Errorf("ministry id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, church_id, ministry_id, event_id, notes, status, service_date, created_at, updated_at
FROM schedules
WHERE church_id = ? AND ministry_id = ?
ORDER BY service_date ASC, id ASC
`, churchID, ministryID)
	if err != nil {
		return nil, fmt.Errorf("list schedules: %w", err)
	}
	defer rows.Close()

	var schedules []schedule.Schedule
	for rows.Next() {
		sched, scanErr := scanSchedule(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("scan schedule row: %w", scanErr)
		}
		schedules = append(schedules, sched)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate schedule rows: %w", err)
	}

	for i := range schedules {
		assignments, err := s.listAssignmentsBySchedule(ctx, schedules[i].ID)
		if err != nil {
			return nil, err
		}
		schedules[i].Assignments = assignments
	}
	return schedules, nil
}

// InsertAssignment inserts one volunteer assignment row.
// A duplicate (schedule_id, member_id) pair surfaces as storage.ErrConflict.
func (s *Store) InsertAssignment(ctx context.Context, a schedule.Assignment) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(a.ID) == "" {
		return fmt.Errorf("assignment id is required")
	}
	if strings.TrimSpace(a.ScheduleID) == "" {
		return fmt.Errorf("schedule id is required")
	}
	if strings.TrimSpace(a.MemberID) == "" {
		return fmt.Errorf("member id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
	INSERT INTO schedule_assignments (id, schedule_id, member_id, created_at)
	VALUES (?, ?, ?, ?)
	`,
		a.ID,
		a.ScheduleID,
		a.MemberID,
		toMillis(a.CreatedAt),
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return storage.ErrConflict
		}
		if isForeignKeyConstraintError(err) {
			return storage.ErrNotFound
		}
		return fmt.Errorf("insert assignment: %w", err)
	}
	return nil
}

// GetAssignment loads one assignment by id.
func (s *Store) GetAssignment(ctx context.Context, assignmentID string) (schedule.Assignment, error) {
	if err := ctx.Err(); err != nil {
		return schedule.Assignment{}, err
	}
	if s == nil || s.sqlDB == nil {
		return schedule.Assignment{}, fmt.Errorf("storage is not configured")
	}
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return schedule.Assignment{}, fmt.Errorf("assignment id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT a.id, a.schedule_id, a.member_id, COALESCE(m.name, ''), COALESCE(m.email, ''), a.created_at
FROM schedule_assignments a
LEFT JOIN members m ON m.id = a.member_id
WHERE a.id = ?
`, assignmentID)
	assignment, err := scanAssignment(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return schedule.Assignment{}, storage.ErrNotFound
		}
		return schedule.Assignment{}, fmt.Errorf("get assignment: %w", err)
	}
	return assignment, nil
}

// DeleteAssignment removes one assignment row. A missing row surfaces as
// storage.ErrNotFound rather than succeeding silently.
func (s *Store) DeleteAssignment(ctx context.Context, assignmentID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	assignmentID = strings.TrimSpace(assignmentID)
	if assignmentID == "" {
		return fmt.Errorf("assignment id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `
DELETE FROM schedule_assignments WHERE id = ?
`, assignmentID)
	if err != nil {
		return fmt.Errorf("delete assignment: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete assignment rows affected: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

// PutMember upserts one member directory row.
func (s *Store) PutMember(ctx context.Context, m storage.Member) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(m.ID) == "" {
		return fmt.Errorf("member id is required")
	}

	_, err := s.sqlDB.ExecContext(ctx, `
	INSERT INTO members (id, church_id, name, email)
	VALUES (?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		church_id = excluded.church_id,
		name = excluded.name,
		email = excluded.email
	`,
		m.ID,
		m.ChurchID,
		m.Name,
		m.Email,
	)
	if err != nil {
		return fmt.Errorf("put member: %w", err)
	}
	return nil
}

// GetMember loads one member directory row.
func (s *Store) GetMember(ctx context.Context, memberID string) (storage.Member, error) {
	if err := ctx.Err(); err != nil {
		return storage.Member{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Member{}, fmt.Errorf("storage is not configured")
	}
	memberID = strings.TrimSpace(memberID)
	if memberID == "" {
		return storage.Member{}, fmt.Errorf("member id is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, church_id, name, email
FROM members
WHERE id = ?
`, memberID)
	var m storage.Member
	if err := row.Scan(&m.ID, &m.ChurchID, &m.Name, &m.Email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Member{}, storage.ErrNotFound
		}
		return storage.Member{}, fmt.Errorf("get member: %w", err)
	}
	return m, nil
}

// PutNotification persists one in-app notification row.
func (s *Store) PutNotification(ctx context.Context, n storage.Notification) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	if strings.TrimSpace(n.ID) == "" {
		return fmt.Errorf("notification id is required")
	}
	if strings.TrimSpace(n.RecipientMemberID) == "" {
		return fmt.Errorf("recipient member id is required")
	}

	var readAt sql.NullInt64
	if n.ReadAt != nil {
		readAt = sql.NullInt64{Int64: toMillis(*n.ReadAt), Valid: true}
	}

	_, err := s.sqlDB.ExecContext(ctx, `
	INSERT INTO notifications (id, recipient_member_id, title, body, link, message_type, created_at, read_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET
		recipient_member_id = excluded.recipient_member_id,
		title = excluded.title,
		body = excluded.body,
		link = excluded.link,
		message_type = excluded.message_type,
		created_at = excluded.created_at,
		read_at = excluded.read_at
	`,
		n.ID,
		n.RecipientMemberID,
		n.Title,
		n.Body,
		n.Link,
		n.MessageType,
		toMillis(n.CreatedAt),
		readAt,
	)
	if err != nil {
		if isUniqueConstraintError(err) {
			return storage.ErrConflict
		}
		return fmt.Errorf("put notification: %w", err)
	}
	return nil
}

// ListNotificationsByRecipient lists one recipient's notifications newest first.
func (s *Store) ListNotificationsByRecipient(ctx context.Context, recipientMemberID string) ([]storage.Notification, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	recipientMemberID = strings.TrimSpace(recipientMemberID)
	if recipientMemberID == "" {
		return nil, fmt.Errorf("recipient member id is required")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT id, recipient_member_id, title, body, link, message_type, created_at, read_at
FROM notifications
WHERE recipient_member_id = ?
ORDER BY created_at DESC, id DESC
`, recipientMemberID)
	if err != nil {
		return nil, fmt.Errorf("list notifications: %w", err)
	}
	defer rows.Close()

	var notifications []storage.Notification
	for rows.Next() {
		n, scanErr := scanNotification(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("scan notification row: %w", scanErr)
		}
		notifications = append(notifications, n)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate notification rows: %w", err)
	}
	return notifications, nil
}

// CountUnreadNotificationsByRecipient returns the unread count for one recipient.
func (s *Store) CountUnreadNotificationsByRecipient(ctx context.Context, recipientMemberID string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("storage is not configured")
	}
	recipientMemberID = strings.TrimSpace(recipientMemberID)
	if recipientMemberID == "" {
		return 0, fmt.Errorf("recipient member id is required")
	}

	var count int
	if err := s.sqlDB.QueryRowContext(ctx, `
SELECT COUNT(1)
FROM notifications
WHERE recipient_member_id = ? AND read_at IS NULL
`, recipientMemberID).Scan(&count); err != nil {
		return 0, fmt.Errorf("count unread notifications: %w", err)
	}
	return count, nil
}

// MarkNotificationRead marks one notification as read for a recipient.
func (s *Store) MarkNotificationRead(ctx context.Context, recipientMemberID, notificationID string, readAt time.Time) (storage.Notification, error) {
	if err := ctx.Err(); err != nil {
		return storage.Notification{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.Notification{}, fmt.Errorf("storage is not configured")
	}
	recipientMemberID = strings.TrimSpace(recipientMemberID)
	notificationID = strings.TrimSpace(notificationID)
	if recipientMemberID == "" {
		return storage.Notification{}, fmt.Errorf("recipient member id is required")
	}
	if notificationID == "" {
		return storage.Notification{}, fmt.Errorf("notification id is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, `
UPDATE notifications
SET read_at = ?
WHERE recipient_member_id = ? AND id = ?
`, toMillis(readAt.UTC()), recipientMemberID, notificationID)
	if err != nil {
		return storage.Notification{}, fmt.Errorf("mark notification read: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return storage.Notification{}, fmt.Errorf("mark notification read rows affected: %w", err)
	}
	if affected == 0 {
		return storage.Notification{}, storage.ErrNotFound
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT id, recipient_member_id, title, body, link, message_type, created_at, read_at
FROM notifications
WHERE recipient_member_id = ? AND id = ?
`, recipientMemberID, notificationID)
	n, err := scanNotification(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.Notification{}, storage.ErrNotFound
		}
		return storage.Notification{}, fmt.Errorf("get notification after mark read: %w", err)
	}
	return n, nil
}

func (s *Store) listAssignmentsBySchedule(ctx context.Context, scheduleID string) ([]schedule.Assignment, error) {
	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT a.id, a.schedule_id, a.member_id, COALESCE(m.name, ''), COALESCE(m.email, ''), a.created_at
FROM schedule_assignments a
LEFT JOIN members m ON m.id = a.member_id
WHERE a.schedule_id = ?
ORDER BY a.created_at ASC, a.id ASC
`, scheduleID)
	if err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	defer rows.Close()

	var assignments []schedule.Assignment
	for rows.Next() {
		assignment, scanErr := scanAssignment(rows.Scan)
		if scanErr != nil {
			return nil, fmt.Errorf("scan assignment row: %w", scanErr)
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate assignment rows: %w", err)
	}
	return assignments, nil
}

type scanner func(dest ...any) error

func scanDemand(scan scanner) (demand.Demand, error) {
	var d demand.Demand
	var status string
	var priority int
	var dueAt sql.NullInt64
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&d.ID,
		&d.ChurchID,
		&d.MinistryID,
		&d.EventID,
		&d.ResponsibleMemberID,
		&d.Title,
		&d.Description,
		&status,
		&priority,
		&dueAt,
		&createdAt,
		&updatedAt,
	); err != nil {
		return demand.Demand{}, err
	}
	parsed, err := demand.ParseStatus(status)
	if err != nil {
		return demand.Demand{}, fmt.Errorf("parse stored demand status %q: %w", status, err)
	}
	d.Status = parsed
	d.Priority = demand.Priority(priority)
	if dueAt.Valid {
		value := fromMillis(dueAt.Int64)
		d.DueAt = &value
	}
	d.CreatedAt = fromMillis(createdAt)
	d.UpdatedAt = fromMillis(updatedAt)
	return d, nil
}

func scanSchedule(scan scanner) (schedule.Schedule, error) {
	var sched schedule.Schedule
	var status string
	var serviceDate int64
	var createdAt int64
	var updatedAt int64
	if err := scan(
		&sched.ID,
		&sched.ChurchID,
		&sched.MinistryID,
		&sched.EventID,
		&sched.Notes,
		&status,
		&serviceDate,
		&createdAt,
		&updatedAt,
	); err != nil {
		return schedule.Schedule{}, err
	}
	sched.Status = parseScheduleStatus(status)
	sched.ServiceDate = fromMillis(serviceDate)
	sched.CreatedAt = fromMillis(createdAt)
	sched.UpdatedAt = fromMillis(updatedAt)
	return sched, nil
}

func scanAssignment(scan scanner) (schedule.Assignment, error) {
	var assignment schedule.Assignment
	var createdAt int64
	if err := scan(
		&assignment.ID,
		&assignment.ScheduleID,
		&assignment.MemberID,
		&assignment.MemberName,
		&assignment.MemberEmail,
		&createdAt,
	); err != nil {
		return schedule.Assignment{}, err
	}
	assignment.CreatedAt = fromMillis(createdAt)
	return assignment, nil
}

func scanNotification(scan scanner) (storage.Notification, error) {
	var n storage.Notification
	var createdAt int64
	var readAt sql.NullInt64
	if err := scan(
		&n.ID,
		&n.RecipientMemberID,
		&n.Title,
		&n.Body,
		&n.Link,
		&n.MessageType,
		&createdAt,
		&readAt,
	); err != nil {
		return storage.Notification{}, err
	}
	n.CreatedAt = fromMillis(createdAt)
	if readAt.Valid {
		value := fromMillis(readAt.Int64)
		n.ReadAt = &value
	}
	return n, nil
}

func parseScheduleStatus(raw string) schedule.Status {
	switch raw {
	case "draft":
		return schedule.StatusDraft
	case "published":
		return schedule.StatusPublished
	default:
		return schedule.StatusUnspecified
	}
}

func isUniqueConstraintError(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "unique constraint failed")
}

func isForeignKeyConstraintError(err error) bool {
	if err == nil {
		return false
	}
	value := strings.ToLower(err.Error())
	return strings.Contains(value, "foreign key constraint failed")
}
