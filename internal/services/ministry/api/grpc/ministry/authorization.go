package ministry

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/louisbranch/shepherd.church/internal/ministry/identity"
	"github.com/louisbranch/shepherd.church/internal/ministry/permission"
	grpcmetadata "github.com/louisbranch/shepherd.church/internal/services/ministry/api/grpc/metadata"
)

// requireCapability authenticates the caller from request metadata and checks
// the capability against the role policy. Unknown roles fail closed.
func requireCapability(ctx context.Context, capability permission.Capability) (identity.Identity, error) {
	caller := grpcmetadata.IdentityFromContext(ctx)
	if !caller.IsAuthenticated() {
		return identity.Identity{}, status.Error(codes.Unauthenticated, "caller identity is required")
	}
	if !caller.Can(capability) {
		return identity.Identity{}, status.Errorf(codes.PermissionDenied, "role %s lacks capability %s", caller.Role, capability)
	}
	return caller, nil
}
