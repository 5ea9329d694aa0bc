package notifications

import (
	"context"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	grpcmetadata "google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	notificationsv1 "github.com/louisbranch/shepherd.church/api/gen/go/notifications/v1"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/notify"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/storage"
)

type fakeNotificationStore struct {
	notifications []storage.Notification
}

func (f *fakeNotificationStore) PutNotification(_ context.Context, n storage.Notification) error {
	f.notifications = append(f.notifications, n)
	return nil
}

func (f *fakeNotificationStore) ListNotificationsByRecipient(_ context.Context, recipientMemberID string) ([]storage.Notification, error) {
	var out []storage.Notification
	for _, n := range f.notifications {
		if n.RecipientMemberID == recipientMemberID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) CountUnreadNotificationsByRecipient(_ context.Context, recipientMemberID string) (int, error) {
	count := 0
	for _, n := range f.notifications {
		if n.RecipientMemberID == recipientMemberID && n.ReadAt == nil {
			count++
		}
	}
	return count, nil
}

func (f *fakeNotificationStore) MarkNotificationRead(_ context.Context, recipientMemberID, notificationID string, readAt time.Time) (storage.Notification, error) {
	for i, n := range f.notifications {
		if n.RecipientMemberID == recipientMemberID && n.ID == notificationID {
			f.notifications[i].ReadAt = &readAt
			return f.notifications[i], nil
		}
	}
	return storage.Notification{}, storage.ErrNotFound
}

func callerContext(userID string) context.Context {
	md := grpcmetadata.Pairs(
		"x-user-id", userID,
		"x-church-id", "church-1",
		"x-user-role", "member",
	)
	return grpcmetadata.NewIncomingContext(context.Background(), md)
}

func TestListNotificationsRequiresIdentity(t *testing.T) {
	t.Parallel()

	svc := NewService(notify.NewInbox(&fakeNotificationStore{}))
	_, err := svc.ListNotifications(context.Background(), &notificationsv1.ListNotificationsRequest{})
	if status.Code(err) != codes.Unauthenticated {
		t.Fatalf("expected unauthenticated, got %v", err)
	}
}

func TestListNotifications(t *testing.T) {
	t.Parallel()

	readAt := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	store := &fakeNotificationStore{notifications: []storage.Notification{
		{ID: "n1", RecipientMemberID: "member-1", Title: "a"},
		{ID: "n2", RecipientMemberID: "member-1", Title: "b", ReadAt: &readAt},
		{ID: "n3", RecipientMemberID: "member-2", Title: "c"},
	}}
	svc := NewService(notify.NewInbox(store))

	resp, err := svc.ListNotifications(callerContext("member-1"), &notificationsv1.ListNotificationsRequest{})
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(resp.GetNotifications()) != 2 {
		t.Fatalf("expected 2 notifications, got %d", len(resp.GetNotifications()))
	}
	if resp.GetUnreadCount() != 1 {
		t.Fatalf("expected 1 unread, got %d", resp.GetUnreadCount())
	}
}

func TestMarkNotificationRead(t *testing.T) {
	t.Parallel()

	store := &fakeNotificationStore{notifications: []storage.Notification{
		{ID: "n1", RecipientMemberID: "member-1", Title: "a"},
	}}
	svc := NewService(notify.NewInbox(store))

	resp, err := svc.MarkNotificationRead(callerContext("member-1"), &notificationsv1.MarkNotificationReadRequest{
		NotificationId: "n1",
	})
	if err != nil {
		t.Fatalf("mark read: %v", err)
	}
	if resp.GetNotification().GetReadAt() == nil {
		t.Fatal("expected read timestamp")
	}

	_, err = svc.MarkNotificationRead(callerContext("member-2"), &notificationsv1.MarkNotificationReadRequest{
		NotificationId: "n1",
	})
	if status.Code(err) != codes.NotFound {
		t.Fatalf("expected not found for other recipient, got %v", err)
	}
}
