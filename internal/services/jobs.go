// Package services holds the application services the CLI drives: job
// browsing, applications, postings, and locally stored bookmarks.
package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/talenthub/talenthub-cli/internal/api"
	"github.com/talenthub/talenthub-cli/internal/models"
	"github.com/talenthub/talenthub-cli/internal/profile"
	"github.com/talenthub/talenthub-cli/internal/repositories/bookmarks"
)

// ApplicationDraft is the raw application input collected from the user.
// Exactly one CV choice applies: reuse the CV already on the profile, or
// name a fresh upload.
type ApplicationDraft struct {
	TalentID     string
	UseCurrentCV bool
	CVName       string
	Interest     string
	CoverLetter  string
}

// JobDraft is the raw posting input before coercion. Salary must parse as
// an integer, requirements split into non-empty lines, and tags are a
// comma-separated list that gets trimmed and deduplicated.
type JobDraft struct {
	Title        string
	Description  string
	Location     string
	Salary       string
	Tags         string
	Requirements string
}

type JobService interface {
	List(ctx context.Context) ([]models.Job, error)
	Search(ctx context.Context, keyword string) ([]models.Job, error)
	Get(ctx context.Context, id string) (*models.Job, error)
	Apply(ctx context.Context, jobID string, draft ApplicationDraft) error
	Post(ctx context.Context, draft JobDraft) (*models.Job, error)
	ListApplicants(ctx context.Context, jobID string) ([]models.Applicant, error)
	Bookmark(ctx context.Context, jobID string) error
	Unbookmark(ctx context.Context, jobID string) error
	Bookmarks(ctx context.Context) ([]string, error)
	IsBookmarked(ctx context.Context, jobID string) (bool, error)
}

type jobService struct {
	client       api.Client
	bookmarkRepo bookmarks.Repository
}

func NewJobService(client api.Client, bookmarkRepo bookmarks.Repository) JobService {
	return &jobService{client: client, bookmarkRepo: bookmarkRepo}
}

func (s *jobService) List(ctx context.Context) ([]models.Job, error) {
	jobs, err := s.client.ListJobs(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing jobs: %w", err)
	}
	return jobs, nil
}

// Search narrows the job listing to postings matching keyword. The listing
// endpoint has no query support, so filtering happens client-side against
// the title, company, location, and tags.
func (s *jobService) Search(ctx context.Context, keyword string) ([]models.Job, error) {
	jobs, err := s.List(ctx)
	if err != nil {
		return nil, err
	}

	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return jobs, nil
	}

	matched := make([]models.Job, 0, len(jobs))
	for _, job := range jobs {
		if jobMatches(job, keyword) {
			matched = append(matched, job)
		}
	}
	return matched, nil
}

func jobMatches(job models.Job, keyword string) bool {
	haystacks := []string{job.Title, job.Recruiter.CompanyName, job.Location}
	haystacks = append(haystacks, job.Tags...)
	for _, h := range haystacks {
		if strings.Contains(strings.ToLower(h), keyword) {
			return true
		}
	}
	return false
}

func (s *jobService) Get(ctx context.Context, id string) (*models.Job, error) {
	job, err := s.client.GetJob(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving job: %w", err)
	}
	return job, nil
}

func (s *jobService) Apply(ctx context.Context, jobID string, draft ApplicationDraft) error {
	if draft.TalentID == "" {
		return fmt.Errorf("applicant id is required")
	}
	if !draft.UseCurrentCV && strings.TrimSpace(draft.CVName) == "" {
		return fmt.Errorf("either reuse the current CV or name a new one")
	}

	app := models.Application{
		TalentID:     draft.TalentID,
		UseCurrentCV: draft.UseCurrentCV,
		Interest:     draft.Interest,
		CoverLetter:  draft.CoverLetter,
	}
	if !draft.UseCurrentCV {
		app.CVName = strings.TrimSpace(draft.CVName)
	}

	if err := s.client.Apply(ctx, jobID, app); err != nil {
		return fmt.Errorf("error submitting application: %w", err)
	}
	return nil
}

func (s *jobService) Post(ctx context.Context, draft JobDraft) (*models.Job, error) {
	coerced, err := coerceJobDraft(draft)
	if err != nil {
		return nil, err
	}

	job, err := s.client.CreateJob(ctx, *coerced)
	if err != nil {
		return nil, fmt.Errorf("error posting job: %w", err)
	}
	return job, nil
}

// coerceJobDraft runs the raw draft through the job schema field specs so
// postings carry the same typed shapes profile updates do.
func coerceJobDraft(draft JobDraft) (*models.NewJob, error) {
	raw := map[string]string{
		"title":        draft.Title,
		"description":  draft.Description,
		"location":     draft.Location,
		"salary":       draft.Salary,
		"tags":         draft.Tags,
		"requirements": draft.Requirements,
	}

	job := &models.NewJob{}
	for _, spec := range profile.JobSchema.Fields {
		v, err := profile.Coerce(spec, raw[spec.Name])
		if err != nil {
			return nil, err
		}
		switch spec.Name {
		case "title":
			job.Title = v.(string)
		case "description":
			job.Description = v.(string)
		case "location":
			job.Location = v.(string)
		case "salary":
			job.Salary = v.(int)
		case "tags":
			job.Tags = v.(profile.Tags)
		case "requirements":
			job.Requirements = v.(profile.Lines)
		}
	}
	return job, nil
}

func (s *jobService) ListApplicants(ctx context.Context, jobID string) ([]models.Applicant, error) {
	applicants, err := s.client.ListApplicants(ctx, jobID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving applicants: %w", err)
	}
	return applicants, nil
}

func (s *jobService) Bookmark(ctx context.Context, jobID string) error {
	if err := s.bookmarkRepo.Add(ctx, jobID); err != nil {
		return fmt.Errorf("error saving bookmark: %w", err)
	}
	return nil
}

func (s *jobService) Unbookmark(ctx context.Context, jobID string) error {
	if err := s.bookmarkRepo.Remove(ctx, jobID); err != nil {
		return fmt.Errorf("error removing bookmark: %w", err)
	}
	return nil
}

func (s *jobService) Bookmarks(ctx context.Context) ([]string, error) {
	ids, err := s.bookmarkRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing bookmarks: %w", err)
	}
	return ids, nil
}

func (s *jobService) IsBookmarked(ctx context.Context, jobID string) (bool, error) {
	ok, err := s.bookmarkRepo.Contains(ctx, jobID)
	if err != nil {
		return false, fmt.Errorf("error checking bookmark: %w", err)
	}
	return ok, nil
}
