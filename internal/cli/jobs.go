package cli

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/talenthub/talenthub-cli/internal/models"
	"github.com/talenthub/talenthub-cli/internal/services"
	"github.com/talenthub/talenthub-cli/internal/session"
)

// Jobs lists postings, optionally narrowed by a keyword matched against
// title, company, location, and tags.
func (a *App) Jobs(ctx context.Context, keyword string) error {
	jobs, err := a.jobs.Search(ctx, keyword)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(jobs) == 0 {
		if keyword != "" {
			printlnFn("No jobs match " + keyword + ".")
		} else {
			printlnFn("No jobs posted yet.")
		}
		return nil
	}
	for _, job := range jobs {
		printlnFn(formatJobLine(job))
	}
	return nil
}

func (a *App) Job(ctx context.Context, id string) error {
	job, err := a.jobs.Get(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn(formatJobLine(*job))
	if job.Description != "" {
		printlnFn(job.Description)
	}
	if len(job.Requirements) > 0 {
		printlnFn("Requirements:")
		for _, req := range job.Requirements {
			printlnFn("  - " + req)
		}
	}
	if len(job.Tags) > 0 {
		printlnFn("Tags: " + strings.Join(job.Tags, ", "))
	}

	bookmarked, err := a.jobs.IsBookmarked(ctx, id)
	if err == nil && bookmarked {
		printlnFn("(bookmarked)")
	}
	return nil
}

// Apply collects an application interactively and submits it. Talents only.
func (a *App) Apply(ctx context.Context, id string) error {
	user, err := a.requireRole(models.RoleTalent)
	if err != nil {
		return err
	}

	useCurrent, err := getYesNo(a.reader, "Use the CV stored on your profile?", os.Stdout)
	if err != nil {
		return err
	}

	draft := services.ApplicationDraft{TalentID: user.UserID, UseCurrentCV: useCurrent}
	if !useCurrent {
		draft.CVName, err = getSimpleText(a.reader, "Enter CV file name", os.Stdout)
		if err != nil {
			return err
		}
	}

	draft.Interest, err = getSimpleText(a.reader, "What interests you in this role?", os.Stdout)
	if err != nil {
		return err
	}

	draft.CoverLetter, err = getMultiline(a.reader, "Cover letter", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.jobs.Apply(ctx, id, draft); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Application submitted.")
	return nil
}

// Bookmark toggles the local bookmark for a job.
func (a *App) Bookmark(ctx context.Context, id string) error {
	bookmarked, err := a.jobs.IsBookmarked(ctx, id)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if bookmarked {
		if err := a.jobs.Unbookmark(ctx, id); err != nil {
			printlnFn("Error:", err.Error())
			return err
		}
		printlnFn("Bookmark removed.")
		return nil
	}

	if err := a.jobs.Bookmark(ctx, id); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	printlnFn("Bookmarked.")
	return nil
}

func (a *App) Bookmarks(ctx context.Context) error {
	ids, err := a.jobs.Bookmarks(ctx)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(ids) == 0 {
		printlnFn("No bookmarks.")
		return nil
	}
	for _, id := range ids {
		printlnFn(id)
	}
	return nil
}

// PostJob collects a job draft interactively and posts it. Recruiters only.
func (a *App) PostJob(ctx context.Context) error {
	if _, err := a.requireRole(models.RoleRecruiter); err != nil {
		return err
	}

	var draft services.JobDraft
	var err error

	if draft.Title, err = getSimpleText(a.reader, "Title", os.Stdout); err != nil {
		return err
	}
	if draft.Description, err = getMultiline(a.reader, "Description", os.Stdout); err != nil {
		return err
	}
	if draft.Location, err = getSimpleText(a.reader, "Location", os.Stdout); err != nil {
		return err
	}
	if draft.Salary, err = getSimpleText(a.reader, "Salary", os.Stdout); err != nil {
		return err
	}
	if draft.Tags, err = getSimpleText(a.reader, "Tags (comma-separated)", os.Stdout); err != nil {
		return err
	}
	if draft.Requirements, err = getMultiline(a.reader, "Requirements, one per line", os.Stdout); err != nil {
		return err
	}

	job, err := a.jobs.Post(ctx, draft)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Posted job " + job.ID)
	return nil
}

func (a *App) Applicants(ctx context.Context, jobID string) error {
	if _, err := a.requireRole(models.RoleRecruiter); err != nil {
		return err
	}

	applicants, err := a.jobs.ListApplicants(ctx, jobID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	if len(applicants) == 0 {
		printlnFn("No applicants yet.")
		return nil
	}
	for _, app := range applicants {
		printlnFn(fmt.Sprintf("%s %s <%s> cv=%s", app.FirstName, app.LastName, app.Email, app.CVFile))
	}
	return nil
}

// requireRole checks that the session is authenticated with the given role
// and reports the mismatch to the user.
func (a *App) requireRole(role string) (*session.User, error) {
	_, user := a.session.Current()
	if user == nil {
		printlnFn("Please log in first.")
		return nil, fmt.Errorf("not logged in")
	}
	if user.Role != role {
		printlnFn("This command is available to " + role + "s only.")
		return nil, fmt.Errorf("role %q required", role)
	}
	return user, nil
}

func formatJobLine(job models.Job) string {
	line := fmt.Sprintf("%s  %s", job.ID, job.Title)
	if job.Recruiter.CompanyName != "" {
		line += " @ " + job.Recruiter.CompanyName
	}
	if job.Location != "" {
		line += " (" + job.Location + ")"
	}
	if job.Salary > 0 {
		line += fmt.Sprintf(" %d", job.Salary)
	}
	return line
}
