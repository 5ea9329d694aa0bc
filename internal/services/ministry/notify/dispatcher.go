// Package notify fans notification events out to the in-app inbox and email.
package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"log"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	apperrors "github.com/louisbranch/shepherd.church/internal/errors"
	"github.com/louisbranch/shepherd.church/internal/platform/id"
	"github.com/louisbranch/shepherd.church/internal/platform/mail"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/storage"
)

// Message types carried on stored notifications.
const (
	MessageTypeDemandAssigned    = "demand.assigned"
	MessageTypeVolunteerAssigned = "schedule.volunteer_assigned"
)

// Event is one notification to fan out to a member.
type Event struct {
	RecipientMemberID string
	RecipientEmail    string
	Title             string
	Body              string
	Link              string
	MessageType       string
}

// Result reports which channels the dispatcher reached.
type Result struct {
	Stored    bool
	EmailSent bool
	Warnings  []string
}

// Dispatcher stores notifications and sends email copies.
//
// Delivery is best effort: a channel failure is recorded as a warning and
// never surfaces as an error, so the operation that triggered the
// notification always succeeds.
type Dispatcher struct {
	store  storage.NotificationStore
	mailer mail.Sender
	clock  func() time.Time
	newID  func() (string, error)
	tracer trace.Tracer
}

// NewDispatcher creates a dispatcher. The mailer may be nil, in which case
// the email channel is skipped.
func NewDispatcher(store storage.NotificationStore, mailer mail.Sender) *Dispatcher {
	return &Dispatcher{
		store:  store,
		mailer: mailer,
		clock:  time.Now,
		newID:  id.NewID,
		tracer: otel.Tracer("shepherd.church/ministry/notify"),
	}
}

// Dispatch fans one event out to every configured channel.
func (d *Dispatcher) Dispatch(ctx context.Context, event Event) Result {
	ctx, span := d.tracer.Start(ctx, "notify.Dispatch", trace.WithAttributes(
		attribute.String("notify.message_type", event.MessageType),
	))
	defer span.End()

	var result Result

	event.RecipientMemberID = strings.TrimSpace(event.RecipientMemberID)
	event.RecipientEmail = strings.TrimSpace(event.RecipientEmail)
	event.Title = strings.TrimSpace(event.Title)
	if event.RecipientMemberID == "" {
		result.Warnings = append(result.Warnings, "notification skipped: empty recipient")
		return result
	}
	if event.Title == "" {
		result.Warnings = append(result.Warnings, "notification skipped: empty title")
		return result
	}

	if err := d.storeNotification(ctx, event); err != nil {
		log.Printf("store notification for member %s: %v", event.RecipientMemberID, err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("store notification: %v", err))
	} else {
		result.Stored = true
	}

	if d.mailer == nil || event.RecipientEmail == "" {
		return result
	}
	if err := d.sendEmail(ctx, event); err != nil {
		log.Printf("send notification email to %s: %v", event.RecipientEmail, err)
		result.Warnings = append(result.Warnings, fmt.Sprintf("send email: %v", err))
	} else {
		result.EmailSent = true
	}
	return result
}

func (d *Dispatcher) storeNotification(ctx context.Context, event Event) error {
	if d.store == nil {
		return fmt.Errorf("notification store is not configured")
	}

	notificationID, err := d.newID()
	if err != nil {
		return fmt.Errorf("generate notification id: %w", err)
	}
	return d.store.PutNotification(ctx, storage.Notification{
		ID:                notificationID,
		RecipientMemberID: event.RecipientMemberID,
		Title:             event.Title,
		Body:              event.Body,
		Link:              event.Link,
		MessageType:       event.MessageType,
		CreatedAt:         d.clock().UTC(),
	})
}

func (d *Dispatcher) sendEmail(ctx context.Context, event Event) error {
	body := fmt.Sprintf("<p>%s</p>", html.EscapeString(event.Body))
	if event.Link != "" {
		body += fmt.Sprintf(`<p><a href="%s">View details</a></p>`, html.EscapeString(event.Link))
	}
	return d.mailer.Send(ctx, mail.Message{
		To:       event.RecipientEmail,
		Subject:  event.Title,
		HTMLBody: body,
	})
}

// Inbox reads and updates a member's stored notifications.
type Inbox struct {
	store storage.NotificationStore
}

// NewInbox creates an inbox over the notification store.
func NewInbox(store storage.NotificationStore) *Inbox {
	return &Inbox{store: store}
}

// List returns a member's notifications, newest first.
func (i *Inbox) List(ctx context.Context, recipientMemberID string) ([]storage.Notification, error) {
	recipientMemberID = strings.TrimSpace(recipientMemberID)
	if recipientMemberID == "" {
		return nil, apperrors.New(apperrors.CodeNotificationEmptyRecipient, "recipient member id is required")
	}
	notifications, err := i.store.ListNotificationsByRecipient(ctx, recipientMemberID)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeStoreUnavailable, "list notifications", err)
	}
	return notifications, nil
}

// CountUnread returns the number of unread notifications for a member.
func (i *Inbox) CountUnread(ctx context.Context, recipientMemberID string) (int, error) {
	recipientMemberID = strings.TrimSpace(recipientMemberID)
	if recipientMemberID == "" {
		return 0, apperrors.New(apperrors.CodeNotificationEmptyRecipient, "recipient member id is required")
	}
	count, err := i.store.CountUnreadNotificationsByRecipient(ctx, recipientMemberID)
	if err != nil {
		return 0, apperrors.Wrap(apperrors.CodeStoreUnavailable, "count unread notifications", err)
	}
	return count, nil
}

// MarkRead marks one notification as read and returns the updated row.
func (i *Inbox) MarkRead(ctx context.Context, recipientMemberID, notificationID string) (storage.Notification, error) {
	recipientMemberID = strings.TrimSpace(recipientMemberID)
	notificationID = strings.TrimSpace(notificationID)
	if recipientMemberID == "" {
		return storage.Notification{}, apperrors.New(apperrors.CodeNotificationEmptyRecipient, "recipient member id is required")
	}
	if notificationID == "" {
		return storage.Notification{}, apperrors.New(apperrors.CodeNotFound, "notification id is required")
	}
	notification, err := i.store.MarkNotificationRead(ctx, recipientMemberID, notificationID, time.Now().UTC())
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return storage.Notification{}, apperrors.New(apperrors.CodeNotFound, "notification not found")
		}
		return storage.Notification{}, apperrors.Wrap(apperrors.CodeStoreUnavailable, "mark notification read", err)
	}
	return notification, nil
}
