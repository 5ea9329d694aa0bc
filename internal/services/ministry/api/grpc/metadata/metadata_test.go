package metadata

import (
	"context"
	"testing"

	grpcmetadata "google.golang.org/grpc/metadata"

	"github.com/louisbranch/shepherd.church/internal/ministry/role"
)

func TestIdentityFromContext(t *testing.T) {
	t.Parallel()

	md := grpcmetadata.Pairs(
		UserIDHeader, "user-1",
		ChurchIDHeader, "church-1",
		UserRoleHeader, "ministry_leader",
	)
	ctx := grpcmetadata.NewIncomingContext(context.Background(), md)

	caller := IdentityFromContext(ctx)
	if caller.UserID != "user-1" || caller.ChurchID != "church-1" {
		t.Fatalf("unexpected identity: %+v", caller)
	}
	if caller.Role != role.RoleMinistryLeader {
		t.Fatalf("unexpected role: %v", caller.Role)
	}
	if !caller.IsAuthenticated() {
		t.Fatal("expected authenticated identity")
	}
}

func TestIdentityFromContextMissingHeaders(t *testing.T) {
	t.Parallel()

	caller := IdentityFromContext(context.Background())
	if caller.UserID != "" || caller.ChurchID != "" {
		t.Fatalf("expected zero identity, got %+v", caller)
	}
	if caller.Role != role.RoleUnspecified {
		t.Fatalf("expected unspecified role, got %v", caller.Role)
	}
	if caller.IsAuthenticated() {
		t.Fatal("missing headers must not authenticate")
	}
}

func TestIdentityFromContextUnknownRole(t *testing.T) {
	t.Parallel()

	md := grpcmetadata.Pairs(
		UserIDHeader, "user-1",
		ChurchIDHeader, "church-1",
		UserRoleHeader, "intergalactic_overlord",
	)
	ctx := grpcmetadata.NewIncomingContext(context.Background(), md)

	caller := IdentityFromContext(ctx)
	if caller.Role != role.RoleUnspecified {
		t.Fatalf("unknown role must parse to unspecified, got %v", caller.Role)
	}
}

func TestFirstMetadataValueFiltersControlCharacters(t *testing.T) {
	t.Parallel()

	md := grpcmetadata.MD{
		UserIDHeader: {"bad\x00value", "user-1"},
	}
	if got := FirstMetadataValue(md, UserIDHeader); got != "user-1" {
		t.Fatalf("expected filtered value, got %q", got)
	}
}

func TestLocaleFromContext(t *testing.T) {
	t.Parallel()

	md := grpcmetadata.Pairs(LocaleHeader, "pt-BR")
	ctx := grpcmetadata.NewIncomingContext(context.Background(), md)
	if got := LocaleFromContext(ctx); got != "pt-BR" {
		t.Fatalf("unexpected locale: %q", got)
	}
	if got := LocaleFromContext(context.Background()); got != "" {
		t.Fatalf("expected empty locale, got %q", got)
	}
}
