// Package cli provides the interactive TalentHub command-line client.
//
// It wires the session manager, API client, and job service into a REPL.
// Typical flow: restore the persisted session, then execute user commands
// until exit.
//
// Key features:
//   - Login / Logout for both account types (talents and recruiters)
//   - Browse jobs, bookmark them locally, apply with a CV choice
//   - Edit the profile field by field and save the accumulated changes
//   - Post jobs and review applicants (recruiters)
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
