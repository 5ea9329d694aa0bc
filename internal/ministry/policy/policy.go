// Package policy resolves the default capability grants for organizational roles.
//
// Resolution is a pure lookup: it performs no I/O, never fails, and grants
// nothing for unknown roles. The resolver does not enforce anything; callers
// decide whether to gate an action on the resolved set.
package policy

import (
	"github.com/louisbranch/shepherd.church/internal/ministry/permission"
	"github.com/louisbranch/shepherd.church/internal/ministry/role"
)

// grants maps each non-administrator role to its fixed capability subset.
// Administrator-tier roles are resolved against the live catalog instead so
// new capabilities are granted to them without touching this table.
var grants = map[role.Role][]permission.Capability{
	role.RoleMinistryLeader: {
		permission.CapabilityManageDemands,
		permission.CapabilityManageSchedules,
		permission.CapabilityManageEvents,
	},
	role.RoleFinanceOfficer: {
		permission.CapabilityManageFinances,
		permission.CapabilityViewReports,
	},
	role.RoleKidsCoordinator: {
		permission.CapabilityManageKids,
	},
	role.RoleIntegrationOfficer: {
		permission.CapabilityManageIntegration,
		permission.CapabilityManageMembers,
	},
	role.RoleMediaTech: {
		permission.CapabilityManageMedia,
		permission.CapabilityManageCommunications,
	},
	role.RoleSmallGroupLeader: {
		permission.CapabilityManageSmallGroups,
	},
	// Operational roles hold no administrative capabilities.
	role.RoleSmallGroupMember: {},
	role.RoleVolunteer:        {},
	role.RoleMember:           {},
}

// Capabilities resolves the default capability set for a role.
//
// Administrator and pastor resolve to the full current catalog. Every other
// defined role resolves to its fixed subset. Unknown roles resolve to the
// empty set.
func Capabilities(r role.Role) []permission.Capability {
	return resolve(r, permission.All())
}

// resolve grants administrator-tier roles the given catalog and every other
// role its fixed subset. Taking the catalog as an argument keeps the
// admin-tier grant tied to whatever the catalog holds at resolution time.
func resolve(r role.Role, catalog []permission.Capability) []permission.Capability {
	if r == role.RoleAdministrator || r == role.RolePastor {
		return catalog
	}
	granted, ok := grants[r]
	if !ok {
		return nil
	}
	out := make([]permission.Capability, len(granted))
	copy(out, granted)
	return out
}

// Has reports whether the role's default grants include the capability.
func Has(r role.Role, capability permission.Capability) bool {
	for _, granted := range Capabilities(r) {
		if granted == capability {
			return true
		}
	}
	return false
}
