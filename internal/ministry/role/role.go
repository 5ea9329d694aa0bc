// Package role defines the closed set of organizational roles.
//
// Roles are assigned to users by the identity layer; this core only reads
// them. Unrecognized role strings parse to RoleUnspecified so downstream
// policy resolution fails closed.
package role

import "strings"

// Role is one organizational position within a church.
type Role int

const (
	// RoleUnspecified represents an unknown or missing role value.
	RoleUnspecified Role = iota
	// RoleAdministrator is the platform administrator for a church.
	RoleAdministrator
	// RolePastor is the lead pastor.
	RolePastor
	// RoleMinistryLeader leads one or more ministries.
	RoleMinistryLeader
	// RoleFinanceOfficer manages contributions and expenses.
	RoleFinanceOfficer
	// RoleKidsCoordinator runs kids check-in.
	RoleKidsCoordinator
	// RoleIntegrationOfficer follows up with newcomers.
	RoleIntegrationOfficer
	// RoleMediaTech operates media and projection.
	RoleMediaTech
	// RoleSmallGroupLeader leads a small group.
	RoleSmallGroupLeader
	// RoleSmallGroupMember participates in a small group.
	RoleSmallGroupMember
	// RoleVolunteer serves in ministries without administrative duties.
	RoleVolunteer
	// RoleMember is a plain congregation member.
	RoleMember
)

var labels = map[Role]string{
	RoleAdministrator:      "administrator",
	RolePastor:             "pastor",
	RoleMinistryLeader:     "ministry_leader",
	RoleFinanceOfficer:     "finance_officer",
	RoleKidsCoordinator:    "kids_coordinator",
	RoleIntegrationOfficer: "integration_officer",
	RoleMediaTech:          "media_tech",
	RoleSmallGroupLeader:   "small_group_leader",
	RoleSmallGroupMember:   "small_group_member",
	RoleVolunteer:          "volunteer",
	RoleMember:             "member",
}

// All returns every defined role, excluding RoleUnspecified.
func All() []Role {
	return []Role{
		RoleAdministrator,
		RolePastor,
		RoleMinistryLeader,
		RoleFinanceOfficer,
		RoleKidsCoordinator,
		RoleIntegrationOfficer,
		RoleMediaTech,
		RoleSmallGroupLeader,
		RoleSmallGroupMember,
		RoleVolunteer,
		RoleMember,
	}
}

// String returns the stable wire label for the role.
func (r Role) String() string {
	if label, ok := labels[r]; ok {
		return label
	}
	return "unspecified"
}

// IsValid reports whether the role is part of the closed enumeration.
func (r Role) IsValid() bool {
	_, ok := labels[r]
	return ok
}

// Parse maps a wire label to a Role. Unknown labels map to RoleUnspecified.
func Parse(raw string) Role {
	raw = strings.ToLower(strings.TrimSpace(raw))
	for role, label := range labels {
		if label == raw {
			return role
		}
	}
	return RoleUnspecified
}
