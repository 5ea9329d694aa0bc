// Package access exposes access.v1 gRPC operations.
package access

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	accessv1 "github.com/louisbranch/shepherd.church/api/gen/go/access/v1"
	"github.com/louisbranch/shepherd.church/internal/ministry/permission"
	"github.com/louisbranch/shepherd.church/internal/ministry/policy"
	"github.com/louisbranch/shepherd.church/internal/ministry/role"
)

// Service exposes the capability catalog and role resolution.
type Service struct {
	accessv1.UnimplementedAccessServiceServer
}

// NewService creates an access gRPC service.
func NewService() *Service {
	return &Service{}
}

// ListCapabilities returns the full capability catalog.
func (s *Service) ListCapabilities(_ context.Context, in *accessv1.ListCapabilitiesRequest) (*accessv1.ListCapabilitiesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "list capabilities request is required")
	}

	catalog := permission.Catalog()
	resp := &accessv1.ListCapabilitiesResponse{
		Capabilities: make([]*accessv1.CapabilityDefinition, 0, len(catalog)),
	}
	for _, definition := range catalog {
		resp.Capabilities = append(resp.Capabilities, &accessv1.CapabilityDefinition{
			Capability: string(definition.Capability),
			Label:      definition.Label,
		})
	}
	return resp, nil
}

// ResolveRoleCapabilities returns the capabilities granted to a role.
// Unknown roles resolve to an empty set rather than an error.
func (s *Service) ResolveRoleCapabilities(_ context.Context, in *accessv1.ResolveRoleCapabilitiesRequest) (*accessv1.ResolveRoleCapabilitiesResponse, error) {
	if in == nil {
		return nil, status.Error(codes.InvalidArgument, "resolve role capabilities request is required")
	}

	capabilities := policy.Capabilities(role.Parse(in.GetRole()))
	resp := &accessv1.ResolveRoleCapabilitiesResponse{
		Capabilities: make([]string, 0, len(capabilities)),
	}
	for _, capability := range capabilities {
		resp.Capabilities = append(resp.Capabilities, string(capability))
	}
	return resp, nil
}
