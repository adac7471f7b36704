package sdk

import "time"

// UserProfile mirrors the API's serialized user document.
//
// Roles is authoritative for access decisions; UserType only seeds the
// default dashboard choice and may lag behind Roles.
type UserProfile struct {
	ID        string   `json:"_id"`
	FirstName string   `json:"firstName"`
	LastName  string   `json:"lastName"`
	Email     string   `json:"email"`
	UserType  UserType `json:"userType"`
	Roles     []string `json:"roles"`
	BarNumber string   `json:"barNumber,omitempty"`
}

// Equal reports whether two profiles carry the same fields, including roles.
func (u UserProfile) Equal(other UserProfile) bool {
	if u.ID != other.ID || u.FirstName != other.FirstName || u.LastName != other.LastName ||
		u.Email != other.Email || u.UserType != other.UserType || u.BarNumber != other.BarNumber {
		return false
	}
	if len(u.Roles) != len(other.Roles) {
		return false
	}
	for i, role := range u.Roles {
		if other.Roles[i] != role {
			return false
		}
	}
	return true
}

// HasRole reports whether the profile carries the given role.
func (u UserProfile) HasRole(role string) bool {
	for _, r := range u.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// CaseComment is a single comment on a case.
type CaseComment struct {
	UserID    string    `json:"userId"`
	UserType  string    `json:"userType"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// CaseParty identifies the counterpart shown on a case card (the assigned
// lawyer for clients, the reporting client for lawyers).
type CaseParty struct {
	ID            string `json:"id,omitempty"`
	Name          string `json:"name"`
	ContactPerson string `json:"contactPerson,omitempty"`
}

// Case mirrors the API's serialized case document.
type Case struct {
	ID                  string        `json:"_id"`
	Title               string        `json:"title"`
	Description         string        `json:"description"`
	Category            string        `json:"category"`
	UrgencyLevel        string        `json:"urgencyLevel,omitempty"`
	CommunicationMethod string        `json:"communicationMethod,omitempty"`
	SpecialRequirements string        `json:"specialRequirements,omitempty"`
	ClientID            string        `json:"clientId"`
	ClientName          string        `json:"clientName,omitempty"`
	Status              CaseStatus    `json:"status"`
	AssignedLawyer      *CaseParty    `json:"assignedLawyer,omitempty"`
	Client              *CaseParty    `json:"client,omitempty"`
	AIClassified        bool          `json:"aiClassified,omitempty"`
	Comments            []CaseComment `json:"comments,omitempty"`
	CreatedAt           time.Time     `json:"created_at"`
	UpdatedAt           time.Time     `json:"updated_at"`
}
