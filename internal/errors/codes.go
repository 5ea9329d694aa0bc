// Package errors provides structured error handling with i18n support.
package errors

import "google.golang.org/grpc/codes"

// Code is a machine-readable error code.
type Code string

const (
	// CodeUnknown represents an unknown error.
	CodeUnknown Code = "UNKNOWN"

	// Demand errors
	CodeDemandEmptyMinistryID  Code = "DEMAND_EMPTY_MINISTRY_ID"
	CodeDemandEmptyChurchID    Code = "DEMAND_EMPTY_CHURCH_ID"
	CodeDemandEmptyTitle       Code = "DEMAND_EMPTY_TITLE"
	CodeDemandInvalidStatus    Code = "DEMAND_INVALID_STATUS"
	CodeDemandInvalidPriority  Code = "DEMAND_INVALID_PRIORITY"
	CodeDemandEmptyResponsible Code = "DEMAND_EMPTY_RESPONSIBLE_MEMBER_ID"

	// Schedule errors
	CodeScheduleEmptyChurchID      Code = "SCHEDULE_EMPTY_CHURCH_ID"
	CodeScheduleEmptyMinistryID    Code = "SCHEDULE_EMPTY_MINISTRY_ID"
	CodeScheduleMissingServiceDate Code = "SCHEDULE_MISSING_SERVICE_DATE"

	// Assignment errors
	CodeAssignmentEmptyID         Code = "ASSIGNMENT_EMPTY_ID"
	CodeAssignmentEmptyScheduleID Code = "ASSIGNMENT_EMPTY_SCHEDULE_ID"
	CodeAssignmentEmptyMemberID   Code = "ASSIGNMENT_EMPTY_MEMBER_ID"
	CodeAssignmentDuplicateMember Code = "ASSIGNMENT_DUPLICATE_MEMBER"

	// Member errors
	CodeMemberEmptyID Code = "MEMBER_EMPTY_ID"

	// Notification errors
	CodeNotificationEmptyRecipient Code = "NOTIFICATION_EMPTY_RECIPIENT"
	CodeNotificationEmptyTitle     Code = "NOTIFICATION_EMPTY_TITLE"

	// Storage errors
	CodeNotFound         Code = "NOT_FOUND"
	CodeStoreUnavailable Code = "STORE_UNAVAILABLE"
)

// GRPCCode maps domain codes to gRPC status codes.
func (c Code) GRPCCode() codes.Code {
	switch c {
	// InvalidArgument - validation failures, bad input
	case CodeDemandEmptyMinistryID,
		CodeDemandEmptyChurchID,
		CodeDemandEmptyTitle,
		CodeDemandInvalidStatus,
		CodeDemandInvalidPriority,
		CodeDemandEmptyResponsible,
		CodeScheduleEmptyChurchID,
		CodeScheduleEmptyMinistryID,
		CodeScheduleMissingServiceDate,
		CodeAssignmentEmptyID,
		CodeAssignmentEmptyScheduleID,
		CodeAssignmentEmptyMemberID,
		CodeMemberEmptyID,
		CodeNotificationEmptyRecipient,
		CodeNotificationEmptyTitle:
		return codes.InvalidArgument

	// AlreadyExists - uniqueness violations
	case CodeAssignmentDuplicateMember:
		return codes.AlreadyExists

	// NotFound - resource doesn't exist
	case CodeNotFound:
		return codes.NotFound

	// Unavailable - backing store unreachable
	case CodeStoreUnavailable:
		return codes.Unavailable

	default:
		return codes.Internal
	}
}
