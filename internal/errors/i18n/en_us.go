package i18n

// Error codes must match the codes defined in internal/errors/codes.go.
// These are duplicated as strings to avoid an import cycle.
const (
	CodeDemandEmptyMinistryID  = "DEMAND_EMPTY_MINISTRY_ID"
	CodeDemandEmptyChurchID    = "DEMAND_EMPTY_CHURCH_ID"
	CodeDemandEmptyTitle       = "DEMAND_EMPTY_TITLE"
	CodeDemandInvalidStatus    = "DEMAND_INVALID_STATUS"
	CodeDemandInvalidPriority  = "DEMAND_INVALID_PRIORITY"
	CodeDemandEmptyResponsible = "DEMAND_EMPTY_RESPONSIBLE_MEMBER_ID"

	CodeScheduleEmptyChurchID      = "SCHEDULE_EMPTY_CHURCH_ID"
	CodeScheduleEmptyMinistryID    = "SCHEDULE_EMPTY_MINISTRY_ID"
	CodeScheduleMissingServiceDate = "SCHEDULE_MISSING_SERVICE_DATE"

	CodeAssignmentEmptyID         = "ASSIGNMENT_EMPTY_ID"
	CodeAssignmentEmptyScheduleID = "ASSIGNMENT_EMPTY_SCHEDULE_ID"
	CodeAssignmentEmptyMemberID   = "ASSIGNMENT_EMPTY_MEMBER_ID"
	CodeAssignmentDuplicateMember = "ASSIGNMENT_DUPLICATE_MEMBER"

	CodeMemberEmptyID = "MEMBER_EMPTY_ID"

	CodeNotificationEmptyRecipient = "NOTIFICATION_EMPTY_RECIPIENT"
	CodeNotificationEmptyTitle     = "NOTIFICATION_EMPTY_TITLE"

	CodeNotFound         = "NOT_FOUND"
	CodeStoreUnavailable = "STORE_UNAVAILABLE"
)

var enUSCatalog = &Catalog{
	locale: "en-US",
	messages: map[Code]string{
		// Demand errors
		CodeDemandEmptyMinistryID:  "Ministry is required for a task",
		CodeDemandEmptyChurchID:    "Church is required for a task",
		CodeDemandEmptyTitle:       "Task title cannot be empty",
		CodeDemandInvalidStatus:    "Invalid task status: {{.Status}}",
		CodeDemandInvalidPriority:  "Invalid task priority specified",
		CodeDemandEmptyResponsible: "A responsible member is required",

		// Schedule errors
		CodeScheduleEmptyChurchID:      "Church is required for a schedule",
		CodeScheduleEmptyMinistryID:    "Ministry is required for a schedule",
		CodeScheduleMissingServiceDate: "Service date is required for a schedule",

		// Assignment errors
		CodeAssignmentEmptyID:         "Assignment is required",
		CodeAssignmentEmptyScheduleID: "Schedule is required for an assignment",
		CodeAssignmentEmptyMemberID:   "Volunteer is required for an assignment",
		CodeAssignmentDuplicateMember: "This volunteer is already on the schedule",

		// Member errors
		CodeMemberEmptyID: "Member is required",

		// Notification errors
		CodeNotificationEmptyRecipient: "Notification recipient is required",
		CodeNotificationEmptyTitle:     "Notification title is required",

		// Storage errors
		CodeNotFound:         "The requested resource was not found",
		CodeStoreUnavailable: "The service is temporarily unavailable",
	},
}
