package constants

import "fmt"

// Closed role set; matched exhaustively at the route layer.
const (
	RoleParent    = "PARENT"
	RoleAssistant = "ASSISTANT"
	RoleAdmin     = "ADMIN"
	RoleCoach     = "COACH"
)

// Account approval gate (checked at login).
const (
	ApprovalPending  = "PENDING"
	ApprovalApproved = "APPROVED"
	ApprovalRejected = "REJECTED"
)

// Role error message templates
const (
	ErrOnlyParentsCanAccess    = "Only parents may access %s."
	ErrOnlyAssistantsCanAccess = "Only assistants may access %s."
	ErrOnlyAdminsCanAccess     = "Only admins may access %s."
	ErrOnlyStaffCanAccess      = "Only staff may access %s."
)

func RoleErrorParent(feature string) string {
	return fmt.Sprintf(ErrOnlyParentsCanAccess, feature)
}

func RoleErrorAssistant(feature string) string {
	return fmt.Sprintf(ErrOnlyAssistantsCanAccess, feature)
}

func RoleErrorAdmin(feature string) string {
	return fmt.Sprintf(ErrOnlyAdminsCanAccess, feature)
}

func RoleErrorStaff(feature string) string {
	return fmt.Sprintf(ErrOnlyStaffCanAccess, feature)
}

// ==========================
// Grouped Role Slices
// ==========================
var (
	AllRoles = []string{
		RoleParent,
		RoleAssistant,
		RoleAdmin,
		RoleCoach,
	}

	StaffRoles = []string{
		RoleAssistant,
		RoleAdmin,
		RoleCoach,
	}

	MarkerRoles = []string{
		RoleAssistant,
		RoleAdmin,
	}
)
