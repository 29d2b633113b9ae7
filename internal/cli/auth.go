package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/talenthub/talenthub-cli/internal/common"
	"github.com/talenthub/talenthub-cli/internal/models"
)

// getSimpleText, getPassword, and getYesNo are indirections used to
// facilitate testing. They point to interactive input helpers and can be
// swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getYesNo = GetYesNo
var getMultiline = GetMultiline

// Login prompts for the account type and credentials and exchanges them at
// the matching endpoint. Rejected credentials are reported to the user;
// other failures keep the current state.
func (a *App) Login(ctx context.Context) error {
	accountType, ok, err := a.askAccountType()
	if err != nil || !ok {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter email", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword("Enter password: ", os.Stdout)
	if err != nil {
		return err
	}

	message, err := a.session.Login(ctx, email, password, accountType)
	if err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid email or password.")
		} else if errors.Is(err, common.ErrUnavailable) {
			printlnFn("Server unavailable, try again later.")
		} else {
			printlnFn("Login failed:", err.Error())
		}
		return err
	}

	printlnFn(message)
	return nil
}

// Register prompts for the role-specific account fields and creates the
// account. Talents provide first and last name, recruiters a company name;
// both confirm the password before anything is sent.
func (a *App) Register(ctx context.Context) error {
	accountType, ok, err := a.askAccountType()
	if err != nil || !ok {
		return err
	}

	var reg models.Registration

	if accountType == models.AccountTalents {
		if reg.FirstName, err = getSimpleText(a.reader, "First name", os.Stdout); err != nil {
			return err
		}
		if reg.LastName, err = getSimpleText(a.reader, "Last name", os.Stdout); err != nil {
			return err
		}
	} else {
		if reg.CompanyName, err = getSimpleText(a.reader, "Company name", os.Stdout); err != nil {
			return err
		}
	}

	if reg.Email, err = getSimpleText(a.reader, "Enter email", os.Stdout); err != nil {
		return err
	}

	if reg.Password, err = getPassword("Enter password: ", os.Stdout); err != nil {
		return err
	}
	confirm, err := getPassword("Confirm password: ", os.Stdout)
	if err != nil {
		return err
	}
	if confirm != reg.Password {
		printlnFn("Passwords do not match.")
		return errors.New("passwords do not match")
	}

	message, err := a.client.Register(ctx, accountType, reg)
	if err != nil {
		if errors.Is(err, common.ErrUnavailable) {
			printlnFn("Server unavailable, try again later.")
		} else {
			printlnFn("Registration failed:", err.Error())
		}
		return err
	}

	printlnFn(message)
	printlnFn("You can now log in.")
	return nil
}

// askAccountType prompts for the account type. The ok result is false when
// the answer matches neither role; that is reported to the user and is not
// an error.
func (a *App) askAccountType() (models.AccountType, bool, error) {
	kind, err := getSimpleText(a.reader, "Account type: talent or recruiter", os.Stdout)
	if err != nil {
		return "", false, err
	}

	switch strings.ToLower(kind) {
	case "talent", "t":
		return models.AccountTalents, true, nil
	case "recruiter", "r":
		return models.AccountRecruiters, true, nil
	default:
		printlnFn("Unknown account type:", kind)
		return "", false, nil
	}
}

// Logout drops the persisted token and any in-progress profile edits.
func (a *App) Logout(ctx context.Context) error {
	a.session.Logout(ctx)
	a.form = nil
	printlnFn("Logged out.")
	return nil
}

func (a *App) Whoami(ctx context.Context) error {
	state, user := a.session.Current()
	if user == nil {
		printlnFn("Not logged in (" + state.String() + ")")
		return nil
	}
	printlnFn(user.DisplayName + " (" + user.Role + ", id " + user.UserID + ")")
	return nil
}
