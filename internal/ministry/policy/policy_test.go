package policy

import (
	"testing"

	"github.com/louisbranch/shepherd.church/internal/ministry/permission"
	"github.com/louisbranch/shepherd.church/internal/ministry/role"
)

func TestAdministratorTierGetsFullCatalog(t *testing.T) {
	t.Parallel()

	catalog := permission.All()
	for _, r := range []role.Role{role.RoleAdministrator, role.RolePastor} {
		resolved := Capabilities(r)
		if len(resolved) != len(catalog) {
			t.Fatalf("%s: expected %d capabilities, got %d", r, len(catalog), len(resolved))
		}
		for i, capability := range catalog {
			if resolved[i] != capability {
				t.Fatalf("%s: capability %d = %s, want %s", r, i, resolved[i], capability)
			}
		}
	}
}

func TestAdministratorTierGrowsWithCatalog(t *testing.T) {
	t.Parallel()

	// Administrator-tier roles are resolved against the catalog itself, so a
	// capability added to the catalog is granted without a grant-table change.
	extra := permission.Capability("MANAGE_OUTREACH")
	extended := append(append([]permission.Capability{}, permission.All()...), extra)

	for _, r := range []role.Role{role.RoleAdministrator, role.RolePastor} {
		resolved := resolve(r, extended)
		found := false
		for _, capability := range resolved {
			if capability == extra {
				found = true
			}
		}
		if !found {
			t.Fatalf("%s: new catalog capability %s not granted", r, extra)
		}
	}

	for _, capability := range resolve(role.RoleMinistryLeader, extended) {
		if capability == extra {
			t.Fatalf("ministry leader granted %s without a grant entry", extra)
		}
	}
}

func TestEveryDefinedRoleResolves(t *testing.T) {
	t.Parallel()

	// Completeness check: no defined role may fall through the grant table.
	for _, r := range role.All() {
		if r == role.RoleAdministrator || r == role.RolePastor {
			continue
		}
		if _, ok := grants[r]; !ok {
			t.Fatalf("role %s has no grant entry", r)
		}
	}
}

func TestResolvedCapabilitiesAreValid(t *testing.T) {
	t.Parallel()

	for _, r := range role.All() {
		for _, capability := range Capabilities(r) {
			if !permission.IsValid(capability) {
				t.Fatalf("role %s grants unknown capability %s", r, capability)
			}
		}
	}
}

func TestOperationalRolesGetEmptySet(t *testing.T) {
	t.Parallel()

	for _, r := range []role.Role{role.RoleMember, role.RoleVolunteer, role.RoleSmallGroupMember} {
		if got := Capabilities(r); len(got) != 0 {
			t.Fatalf("%s: expected empty capability set, got %v", r, got)
		}
	}
}

func TestUnknownRoleFailsClosed(t *testing.T) {
	t.Parallel()

	if got := Capabilities(role.RoleUnspecified); got != nil {
		t.Fatalf("expected nil set for unspecified role, got %v", got)
	}
	if got := Capabilities(role.Role(999)); got != nil {
		t.Fatalf("expected nil set for out-of-range role, got %v", got)
	}
}

func TestResolutionIsDeterministic(t *testing.T) {
	t.Parallel()

	for _, r := range role.All() {
		first := Capabilities(r)
		second := Capabilities(r)
		if len(first) != len(second) {
			t.Fatalf("%s: non-deterministic set size", r)
		}
		for i := range first {
			if first[i] != second[i] {
				t.Fatalf("%s: non-deterministic capability order at %d", r, i)
			}
		}
	}
}

func TestHas(t *testing.T) {
	t.Parallel()

	if !Has(role.RoleMinistryLeader, permission.CapabilityManageDemands) {
		t.Fatal("ministry leader should manage demands")
	}
	if Has(role.RoleMinistryLeader, permission.CapabilityManageFinances) {
		t.Fatal("ministry leader should not manage finances")
	}
	if Has(role.RoleMember, permission.CapabilityManageDemands) {
		t.Fatal("member should hold no capabilities")
	}
	if !Has(role.RoleAdministrator, permission.CapabilityManageSettings) {
		t.Fatal("administrator should hold every capability")
	}
}
