package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/talenthub/talenthub-cli/internal/common"
	"github.com/talenthub/talenthub-cli/internal/profile"
)

// readFile is a test seam for loading attachment bytes from disk.
var readFile = os.ReadFile

// Profile fetches the current user's record and opens an edit session.
// A fresh fetch discards any unsaved edits from a previous session.
func (a *App) Profile(ctx context.Context) error {
	_, user := a.session.Current()
	if user == nil {
		printlnFn("Please log in first.")
		return fmt.Errorf("not logged in")
	}

	schema, err := schemaForRole(user.Role)
	if err != nil {
		return err
	}

	remote, err := a.client.GetProfile(ctx, user.Role, user.UserID)
	if err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	a.form = profile.NewForm(schema, user.Role, user.UserID, remote)
	a.printForm()
	return nil
}

func (a *App) printForm() {
	for _, spec := range a.form.Fields() {
		printlnFn(fmt.Sprintf("%-14s %s", spec.Name, a.form.Value(spec.Name)))
	}
	for _, slot := range a.form.Slots() {
		current := ""
		if v, ok := a.form.Remote()[slot].(string); ok {
			current = v
		}
		printlnFn(fmt.Sprintf("%-14s %s", slot, current))
	}
}

func (a *App) Set(ctx context.Context, field string, value string) error {
	if a.form == nil {
		printlnFn("No profile loaded, run 'profile' first.")
		return fmt.Errorf("no profile loaded")
	}

	if err := a.form.Set(field, value); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}
	return nil
}

// AttachFile stages a file for upload into the named slot.
func (a *App) AttachFile(ctx context.Context, slot string, path string) error {
	if a.form == nil {
		printlnFn("No profile loaded, run 'profile' first.")
		return fmt.Errorf("no profile loaded")
	}

	data, err := readFile(path)
	if err != nil {
		printlnFn("Error reading file:", err.Error())
		return err
	}

	if err := a.form.Attach(slot, filepath.Base(path), data); err != nil {
		if errors.Is(err, common.ErrFileTooLarge) {
			printlnFn("File exceeds the 5 MB limit.")
		} else {
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn("Staged " + filepath.Base(path) + " for " + slot + ".")
	return nil
}

// ClearFile marks the slot's stored file for removal on the next save.
func (a *App) ClearFile(ctx context.Context, slot string) error {
	if a.form == nil {
		printlnFn("No profile loaded, run 'profile' first.")
		return fmt.Errorf("no profile loaded")
	}

	if err := a.form.ClearAttachment(slot); err != nil {
		printlnFn("Error:", err.Error())
		return err
	}

	printlnFn("Marked " + slot + " for removal.")
	return nil
}

// Save submits the accumulated edits as one partial update.
func (a *App) Save(ctx context.Context) error {
	if a.form == nil {
		printlnFn("No profile loaded, run 'profile' first.")
		return fmt.Errorf("no profile loaded")
	}

	_, err := a.form.Save(ctx, a.client)
	if err != nil {
		switch {
		case errors.Is(err, common.ErrNoChanges):
			printlnFn("Nothing to save.")
		case errors.Is(err, common.ErrSaveInFlight):
			printlnFn("A save is already in progress.")
		default:
			printlnFn("Error:", err.Error())
		}
		return err
	}

	printlnFn("Profile saved.")
	return nil
}
