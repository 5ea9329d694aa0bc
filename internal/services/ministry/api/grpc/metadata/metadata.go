// Package metadata defines the gRPC headers that carry caller identity and
// request context across service boundaries.
package metadata

import (
	"context"
	"strings"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/shepherd.church/internal/ministry/identity"
	"github.com/louisbranch/shepherd.church/internal/ministry/role"
	"github.com/louisbranch/shepherd.church/internal/platform/id"
)

// UserIDHeader is the gRPC metadata key for the authenticated member ID.
const UserIDHeader = "x-user-id"

// ChurchIDHeader is the gRPC metadata key for the caller's church tenant.
const ChurchIDHeader = "x-church-id"

// UserRoleHeader is the gRPC metadata key for the caller's role label.
const UserRoleHeader = "x-user-role"

// LocaleHeader is the gRPC metadata key for the caller's preferred locale.
const LocaleHeader = "x-locale"

// RequestIDHeader is the gRPC metadata key for request correlation IDs.
const RequestIDHeader = "x-shepherd-church-request-id"

// contextKey stores metadata values in context.
type contextKey string

const requestIDContextKey contextKey = "shepherd-church-request-id"

// IdentityFromContext builds the caller identity from incoming metadata.
// Missing or malformed headers yield zero-value fields; authorization layers
// decide what to reject.
func IdentityFromContext(ctx context.Context) identity.Identity {
	return identity.Identity{
		UserID:   metadataValueFromIncomingContext(ctx, UserIDHeader),
		ChurchID: metadataValueFromIncomingContext(ctx, ChurchIDHeader),
		Role:     role.Parse(metadataValueFromIncomingContext(ctx, UserRoleHeader)),
	}
}

// LocaleFromContext returns the caller's preferred locale from incoming metadata.
func LocaleFromContext(ctx context.Context) string {
	return metadataValueFromIncomingContext(ctx, LocaleHeader)
}

// RequestIDFromContext returns the request ID stored in context.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDContextKey).(string)
	return value
}

// WithRequestID stores the request ID in context.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil {
		ctx = context.Background()
	}
	return context.WithValue(ctx, requestIDContextKey, requestID)
}

// IsPrintableASCII reports whether a string contains only printable ASCII characters.
func IsPrintableASCII(value string) bool {
	if value == "" {
		return false
	}
	for i := 0; i < len(value); i++ {
		if value[i] < 0x20 || value[i] > 0x7e {
			return false
		}
	}
	return true
}

// FirstMetadataValue returns the first printable ASCII metadata value for a key.
// Printable filtering drops control characters so header values stay safe in
// logs and downstream propagation.
func FirstMetadataValue(md metadata.MD, key string) string {
	if len(md) == 0 {
		return ""
	}
	for mdKey, values := range md {
		if !strings.EqualFold(mdKey, key) {
			continue
		}
		for _, value := range values {
			if IsPrintableASCII(value) {
				return value
			}
		}
	}
	return ""
}

// UnaryServerInterceptor guarantees every inbound unary call carries a request
// correlation ID, generating one when the client omits it.
func UnaryServerInterceptor(idGenerator func() (string, error)) grpc.UnaryServerInterceptor {
	if idGenerator == nil {
		idGenerator = id.NewID
	}
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		updatedCtx, requestID, err := ensureRequestMetadata(ctx, idGenerator)
		if err != nil {
			return nil, status.Errorf(codes.Internal, "ensure request metadata: %v", err)
		}
		if headerErr := grpc.SetHeader(updatedCtx, metadata.Pairs(RequestIDHeader, requestID)); headerErr != nil {
			return nil, status.Errorf(codes.Internal, "set response metadata: %v", headerErr)
		}
		return handler(updatedCtx, req)
	}
}

func ensureRequestMetadata(ctx context.Context, idGenerator func() (string, error)) (context.Context, string, error) {
	requestID := metadataValueFromIncomingContext(ctx, RequestIDHeader)
	if requestID == "" {
		generatedID, err := idGenerator()
		if err != nil {
			return nil, "", err
		}
		requestID = generatedID
	}
	return WithRequestID(ctx, requestID), requestID, nil
}

func metadataValueFromIncomingContext(ctx context.Context, header string) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	return FirstMetadataValue(md, header)
}
