// Package api implements the HTTP client for the TalentHub backend. The
// backend is an external collaborator; this package owns attaching the
// bearer token to outgoing requests, observing 401 responses, and mapping
// transport failures to the shared sentinel errors.
package api

import (
	"context"

	"github.com/talenthub/talenthub-cli/internal/models"
	"github.com/talenthub/talenthub-cli/internal/profile"
)

// TokenSource supplies the current bearer token, or "" when the session is
// anonymous. The session manager provides it.
type TokenSource func() string

// UnauthorizedHandler is invoked when an authenticated request receives a
// 401. The session manager's HandleUnauthorized satisfies it.
type UnauthorizedHandler func(ctx context.Context)

type Client interface {
	Register(ctx context.Context, accountType models.AccountType, reg models.Registration) (string, error)
	Login(ctx context.Context, email string, password string, accountType models.AccountType) (*models.LoginResult, error)
	GetProfile(ctx context.Context, role string, id string) (profile.Record, error)
	UpdateProfile(ctx context.Context, role string, id string, cs *profile.ChangeSet) (profile.Record, error)
	ListJobs(ctx context.Context) ([]models.Job, error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, job models.NewJob) (*models.Job, error)
	Apply(ctx context.Context, jobID string, app models.Application) error
	ListApplicants(ctx context.Context, jobID string) ([]models.Applicant, error)
}
