package models

// Application is the payload submitted when a talent applies to a job.
// Exactly one of UseCurrentCV / CVName describes the CV choice: either the
// CV already stored on the profile, or a freshly named upload.
type Application struct {
	TalentID     string `json:"talentId"`
	UseCurrentCV bool   `json:"useCurrentCV"`
	CVName       string `json:"cv,omitempty"`
	Interest     string `json:"interest"`
	CoverLetter  string `json:"coverLetter"`
}

// Applicant is one entry in a recruiter's applicant listing for a job.
type Applicant struct {
	ID          string `json:"_id"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phoneNumber"`
	CVFile      string `json:"cvFile"`
	Interest    string `json:"interest"`
	CoverLetter string `json:"coverLetter"`
}
