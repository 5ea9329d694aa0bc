package identity

import (
	"testing"

	"github.com/louisbranch/shepherd.church/internal/ministry/permission"
	"github.com/louisbranch/shepherd.church/internal/ministry/role"
)

func TestIsAuthenticated(t *testing.T) {
	t.Parallel()

	if (Identity{}).IsAuthenticated() {
		t.Fatal("empty identity must not be authenticated")
	}
	if (Identity{UserID: "u"}).IsAuthenticated() {
		t.Fatal("identity without church must not be authenticated")
	}
	if !(Identity{UserID: "u", ChurchID: "c"}).IsAuthenticated() {
		t.Fatal("expected authenticated identity")
	}
}

func TestCanDelegatesToPolicy(t *testing.T) {
	t.Parallel()

	leader := Identity{UserID: "u", ChurchID: "c", Role: role.RoleMinistryLeader}
	if !leader.Can(permission.CapabilityManageSchedules) {
		t.Fatal("ministry leader should manage schedules")
	}
	if leader.Can(permission.CapabilityManageSettings) {
		t.Fatal("ministry leader should not manage settings")
	}

	unknown := Identity{UserID: "u", ChurchID: "c"}
	if unknown.Can(permission.CapabilityManageDemands) {
		t.Fatal("unspecified role must fail closed")
	}
}
