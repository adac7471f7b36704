package sdk

import (
	"encoding/json"
	"strings"
)

// Role tags carried in UserProfile.Roles. The role list governs route
// access; new roles may appear server-side without an SDK release.
const (
	RoleClient = "client"
	RoleLawyer = "lawyer"
)

// UserType encodes the account flavor chosen at signup.
type UserType string

const (
	UserTypeClient UserType = "client"
	UserTypeLawyer UserType = "lawyer"
)

// ParseUserType normalizes known user types while keeping unknown values.
func ParseUserType(val string) UserType {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "":
		return ""
	case "client":
		return UserTypeClient
	case "lawyer":
		return UserTypeLawyer
	default:
		return UserType(strings.TrimSpace(val))
	}
}

// IsOther reports whether the value is not one of the known constants.
func (t UserType) IsOther() bool {
	switch t {
	case UserTypeClient, UserTypeLawyer:
		return false
	default:
		return strings.TrimSpace(string(t)) != ""
	}
}

func (t UserType) String() string {
	return string(t)
}

func (t UserType) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(t))
}

func (t *UserType) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*t = ParseUserType(raw)
	return nil
}

// CaseStatus encodes the lifecycle state of a case.
type CaseStatus string

const (
	CaseStatusPending    CaseStatus = "Pending"
	CaseStatusAssigned   CaseStatus = "Assigned"
	CaseStatusInProgress CaseStatus = "InProgress"
	CaseStatusOnHold     CaseStatus = "OnHold"
	CaseStatusClosed     CaseStatus = "Closed"
)

// ParseCaseStatus normalizes known statuses while keeping vendor values.
func ParseCaseStatus(val string) CaseStatus {
	switch strings.ToLower(strings.TrimSpace(val)) {
	case "":
		return ""
	case "pending":
		return CaseStatusPending
	case "assigned":
		return CaseStatusAssigned
	case "inprogress":
		return CaseStatusInProgress
	case "onhold":
		return CaseStatusOnHold
	case "closed":
		return CaseStatusClosed
	default:
		return CaseStatus(strings.TrimSpace(val))
	}
}

// IsOther reports whether the status is not one of the known constants.
func (s CaseStatus) IsOther() bool {
	switch s {
	case CaseStatusPending, CaseStatusAssigned, CaseStatusInProgress, CaseStatusOnHold, CaseStatusClosed:
		return false
	default:
		return strings.TrimSpace(string(s)) != ""
	}
}

func (s CaseStatus) String() string {
	return string(s)
}

func (s CaseStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(s))
}

func (s *CaseStatus) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*s = ParseCaseStatus(raw)
	return nil
}
