package models

// Company is the recruiter reference embedded in a job posting.
type Company struct {
	ID          string `json:"_id"`
	CompanyName string `json:"companyName"`
}

// Job is a posting as returned by the backend.
type Job struct {
	ID           string   `json:"_id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Salary       int      `json:"salary"`
	Tags         []string `json:"tags"`
	Requirements []string `json:"requirements"`
	Recruiter    Company  `json:"recruiterId"`
}

// NewJob is the payload for posting a job. Salary, tags, and requirements
// are already coerced to their typed shapes by the caller.
type NewJob struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Location     string   `json:"location"`
	Salary       int      `json:"salary"`
	Tags         []string `json:"tags"`
	Requirements []string `json:"requirements"`
}
