package access

import (
	"context"
	"testing"

	accessv1 "github.com/louisbranch/shepherd.church/api/gen/go/access/v1"
	"github.com/louisbranch/shepherd.church/internal/ministry/permission"
)

func TestListCapabilitiesReturnsCatalog(t *testing.T) {
	t.Parallel()

	svc := NewService()
	resp, err := svc.ListCapabilities(context.Background(), &accessv1.ListCapabilitiesRequest{})
	if err != nil {
		t.Fatalf("list capabilities: %v", err)
	}
	if len(resp.GetCapabilities()) != len(permission.Catalog()) {
		t.Fatalf("expected full catalog, got %d entries", len(resp.GetCapabilities()))
	}
	for _, definition := range resp.GetCapabilities() {
		if definition.GetCapability() == "" || definition.GetLabel() == "" {
			t.Fatalf("incomplete definition: %+v", definition)
		}
	}
}

func TestResolveRoleCapabilities(t *testing.T) {
	t.Parallel()

	svc := NewService()

	admin, err := svc.ResolveRoleCapabilities(context.Background(), &accessv1.ResolveRoleCapabilitiesRequest{Role: "administrator"})
	if err != nil {
		t.Fatalf("resolve administrator: %v", err)
	}
	if len(admin.GetCapabilities()) != len(permission.All()) {
		t.Fatalf("administrator must hold the full catalog, got %d", len(admin.GetCapabilities()))
	}

	leader, err := svc.ResolveRoleCapabilities(context.Background(), &accessv1.ResolveRoleCapabilitiesRequest{Role: "ministry_leader"})
	if err != nil {
		t.Fatalf("resolve ministry leader: %v", err)
	}
	found := false
	for _, capability := range leader.GetCapabilities() {
		if capability == string(permission.CapabilityManageDemands) {
			found = true
		}
		if capability == string(permission.CapabilityManageSettings) {
			t.Fatal("ministry leader must not manage settings")
		}
	}
	if !found {
		t.Fatal("ministry leader must manage demands")
	}
}

func TestResolveUnknownRoleFailsClosed(t *testing.T) {
	t.Parallel()

	svc := NewService()
	resp, err := svc.ResolveRoleCapabilities(context.Background(), &accessv1.ResolveRoleCapabilitiesRequest{Role: "wizard"})
	if err != nil {
		t.Fatalf("resolve unknown role: %v", err)
	}
	if len(resp.GetCapabilities()) != 0 {
		t.Fatalf("unknown role must resolve to no capabilities, got %v", resp.GetCapabilities())
	}
}
