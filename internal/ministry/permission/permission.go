// Package permission defines the closed catalog of administrative capabilities.
//
// The catalog is process-wide reference data: defined once, never mutated at
// runtime. Administrator-tier roles are granted the full catalog at resolution
// time, so extending the catalog automatically extends their grants.
package permission

// Capability identifies one administrative permission gating a feature area.
type Capability string

const (
	// CapabilityManageMembers allows managing the member directory.
	CapabilityManageMembers Capability = "MANAGE_MEMBERS"
	// CapabilityManageMinistries allows managing ministries and their leadership.
	CapabilityManageMinistries Capability = "MANAGE_MINISTRIES"
	// CapabilityManageEvents allows managing service events and the church calendar.
	CapabilityManageEvents Capability = "MANAGE_EVENTS"
	// CapabilityManageDemands allows managing ministry tasks.
	CapabilityManageDemands Capability = "MANAGE_DEMANDS"
	// CapabilityManageSchedules allows managing volunteer service schedules.
	CapabilityManageSchedules Capability = "MANAGE_SCHEDULES"
	// CapabilityManageFinances allows managing contributions and expenses.
	CapabilityManageFinances Capability = "MANAGE_FINANCES"
	// CapabilityManageKids allows managing kids check-in and classrooms.
	CapabilityManageKids Capability = "MANAGE_KIDS"
	// CapabilityManageIntegration allows managing newcomer follow-up.
	CapabilityManageIntegration Capability = "MANAGE_INTEGRATION"
	// CapabilityManageMedia allows managing media and projection assets.
	CapabilityManageMedia Capability = "MANAGE_MEDIA"
	// CapabilityManageSmallGroups allows managing small groups and their members.
	CapabilityManageSmallGroups Capability = "MANAGE_SMALL_GROUPS"
	// CapabilityManageCommunications allows sending church-wide communications.
	CapabilityManageCommunications Capability = "MANAGE_COMMUNICATIONS"
	// CapabilityViewReports allows viewing administrative reports.
	CapabilityViewReports Capability = "VIEW_REPORTS"
	// CapabilityManageSettings allows managing church-level settings.
	CapabilityManageSettings Capability = "MANAGE_SETTINGS"
)

// Definition pairs a capability with its human-readable label.
type Definition struct {
	Capability Capability
	Label      string
}

// catalog is the ordered source of truth for every capability the system
// recognizes. Order is presentation order.
var catalog = []Definition{
	{CapabilityManageMembers, "Members"},
	{CapabilityManageMinistries, "Ministries"},
	{CapabilityManageEvents, "Events"},
	{CapabilityManageDemands, "Ministry Tasks"},
	{CapabilityManageSchedules, "Service Schedules"},
	{CapabilityManageFinances, "Finances"},
	{CapabilityManageKids, "Kids Check-in"},
	{CapabilityManageIntegration, "Newcomer Integration"},
	{CapabilityManageMedia, "Media & Projection"},
	{CapabilityManageSmallGroups, "Small Groups"},
	{CapabilityManageCommunications, "Communications"},
	{CapabilityViewReports, "Reports"},
	{CapabilityManageSettings, "Settings"},
}

// Catalog returns the full ordered list of capability definitions.
func Catalog() []Definition {
	out := make([]Definition, len(catalog))
	copy(out, catalog)
	return out
}

// All returns every capability identifier in catalog order.
func All() []Capability {
	out := make([]Capability, 0, len(catalog))
	for _, def := range catalog {
		out = append(out, def.Capability)
	}
	return out
}

// Label returns the display label for a capability, or empty for unknown values.
func Label(capability Capability) string {
	for _, def := range catalog {
		if def.Capability == capability {
			return def.Label
		}
	}
	return ""
}

// IsValid reports whether the capability is part of the catalog.
func IsValid(capability Capability) bool {
	return Label(capability) != ""
}
