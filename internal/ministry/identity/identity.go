// Package identity carries the authenticated caller context.
//
// Identity is always passed explicitly into operations; nothing in this core
// reads ambient session state. The identity layer that authenticates users
// and assigns roles is an external collaborator.
package identity

import (
	"strings"

	"github.com/louisbranch/shepherd.church/internal/ministry/permission"
	"github.com/louisbranch/shepherd.church/internal/ministry/policy"
	"github.com/louisbranch/shepherd.church/internal/ministry/role"
)

// Identity describes the caller of an operation.
type Identity struct {
	UserID   string
	ChurchID string
	Role     role.Role
}

// IsAuthenticated reports whether the identity carries a user and church.
func (i Identity) IsAuthenticated() bool {
	return strings.TrimSpace(i.UserID) != "" && strings.TrimSpace(i.ChurchID) != ""
}

// Can reports whether the caller's role grants the capability by default.
func (i Identity) Can(capability permission.Capability) bool {
	return policy.Has(i.Role, capability)
}
