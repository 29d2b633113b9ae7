// Package models defines the data shapes exchanged with the TalentHub
// backend: account roles, jobs, and job applications.
package models

// Role values carried in token claims and profile records.
const (
	RoleTalent    = "talent"
	RoleRecruiter = "recruiter"
)

// AccountType selects the login endpoint family.
type AccountType string

const (
	AccountTalents    AccountType = "Talents"
	AccountRecruiters AccountType = "Recruiters"
)

// LoginResult is the payload of a successful credential exchange. Token may
// be empty when the server rejected the credentials with a 2xx body.
type LoginResult struct {
	Token   string `json:"token"`
	Message string `json:"message,omitempty"`
}

// Registration is the payload for creating an account. FirstName and
// LastName apply to talent accounts, CompanyName to recruiter accounts.
type Registration struct {
	FirstName   string `json:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty"`
	CompanyName string `json:"companyName,omitempty"`
	Email       string `json:"email"`
	Password    string `json:"password"`
}
