// Package notifications exposes notifications.v1 gRPC operations.
package notifications

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"

	notificationsv1 "github.com/louisbranch/shepherd.church/api/gen/go/notifications/v1"
	apperrors "github.com/louisbranch/shepherd.church/internal/errors"
	grpcmetadata "github.com/louisbranch/shepherd.church/internal/services/ministry/api/grpc/metadata"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/notify"
	"github.com/louisbranch/shepherd.church/internal/services/ministry/storage"
)

// Service exposes a member's notification inbox.
type Service struct {
	notificationsv1.UnimplementedNotificationServiceServer
	inbox *notify.Inbox
}

// NewService creates a notifications gRPC service.
func NewService(inbox *notify.Inbox) *Service {
	return &Service{inbox: inbox}
}

// ListNotifications returns the caller's notifications, newest first.
func (s *Service) ListNotifications(ctx context.Context, in *notificationsv1.ListNotificationsRequest) (*notificationsv1.ListNotificationsResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list notifications request is required")
	}
	if s == nil || s.inbox == nil {
		return nil, status.Error(codes.Internal, "notification inbox is not configured")
	}
	caller := grpcmetadata.IdentityFromContext(ctx)
	if !caller.IsAuthenticated() {
		return nil, status.Error(codes.Unauthenticated, "caller identity is required")
	}

	locale := grpcmetadata.LocaleFromContext(ctx)
	notifications, err := s.inbox.List(ctx, caller.UserID)
	if err != nil {
		return nil, apperrors.HandleError(err, locale)
	}
	unread, err := s.inbox.CountUnread(ctx, caller.UserID)
	if err != nil {
		return nil, apperrors.HandleError(err, locale)
	}

	resp := &notificationsv1.ListNotificationsResponse{
		Notifications: make([]*notificationsv1.Notification, 0, len(notifications)),
		UnreadCount:   int32(unread),
	}
	for _, n := range notifications {
		resp.Notifications = append(resp.Notifications, notificationToProto(n))
	}
	return resp, nil
}

// MarkNotificationRead marks one of the caller's notifications as read.
func (s *Service) MarkNotificationRead(ctx context.Context, in *notificationsv1.MarkNotificationReadRequest) (*notificationsv1.MarkNotificationReadResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "mark notification read request is required")
	}
	if s == nil || s.inbox == nil {
		return nil, status.Error(codes.Internal, "notification inbox is not configured")
	}
	caller := grpcmetadata.IdentityFromContext(ctx)
	if !caller.IsAuthenticated() {
		return nil, status.Error(codes.Unauthenticated, "caller identity is required")
	}

	notification, err := s.inbox.MarkRead(ctx, caller.UserID, in.GetNotificationId())
	if err != nil {
		return nil, apperrors.HandleError(err, grpcmetadata.LocaleFromContext(ctx))
	}
	return &notificationsv1.MarkNotificationReadResponse{
		Notification: notificationToProto(notification),
	}, nil
}

func notificationToProto(n storage.Notification) *notificationsv1.Notification {
	out := &notificationsv1.Notification{
		Id:                n.ID,
		RecipientMemberId: n.RecipientMemberID,
		Title:             n.Title,
		Body:              n.Body,
		Link:              n.Link,
		MessageType:       n.MessageType,
		CreatedAt:         timestamppb.New(n.CreatedAt),
	}
	if n.ReadAt != nil {
		out.ReadAt = timestamppb.New(*n.ReadAt)
	}
	return out
}
