package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"

	"github.com/talenthub/talenthub-cli/internal/api"
	"github.com/talenthub/talenthub-cli/internal/logging"
	"github.com/talenthub/talenthub-cli/internal/models"
	"github.com/talenthub/talenthub-cli/internal/profile"
	"github.com/talenthub/talenthub-cli/internal/services"
	"github.com/talenthub/talenthub-cli/internal/session"
)

type App struct {
	session *session.Manager
	client  api.Client
	jobs    services.JobService
	log     logging.Logger
	reader  *bufio.Reader

	// form is the profile edit session loaded by the "profile" command.
	// It accumulates field edits and attachment intents until "save".
	form *profile.Form
}

func NewApp(mgr *session.Manager, client api.Client, jobs services.JobService, log logging.Logger) *App {
	a := &App{
		session: mgr,
		client:  client,
		jobs:    jobs,
		log:     log,
		reader:  bufio.NewReader(os.Stdin),
	}
	mgr.SetOnSessionExpired(func() {
		printlnFn("Session expired, please log in again.")
	})
	return a
}

// Run restores the persisted session and starts the REPL. Restore must
// finish before the first command so the prompt never shows the unresolved
// state.
func (a *App) Run(ctx context.Context) error {
	if err := a.session.Restore(ctx); err != nil {
		return fmt.Errorf("restoring session: %w", err)
	}

	printlnFn("TalentHub CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
	return nil
}

func (a *App) isLoggedIn() bool {
	return a.session.IsAuthenticated()
}

func (a *App) getStatus() string {
	_, user := a.session.Current()
	if user == nil {
		return ""
	}
	return fmt.Sprintf("(%s %s)", user.DisplayName, user.Role)
}

// schemaForRole maps the session role to the profile schema edited by the
// "profile" command.
func schemaForRole(role string) (profile.Schema, error) {
	switch role {
	case models.RoleTalent:
		return profile.TalentSchema, nil
	case models.RoleRecruiter:
		return profile.CompanySchema, nil
	default:
		return profile.Schema{}, fmt.Errorf("unknown role %q", role)
	}
}
