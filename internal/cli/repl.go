package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// execIface defines the minimal command surface the REPL needs to operate.
// The real App type satisfies this interface; tests can provide a lightweight stub.
type execIface interface {
	isLoggedIn() bool
	Register(ctx context.Context) error
	Login(ctx context.Context) error
	Logout(ctx context.Context) error
	Whoami(ctx context.Context) error
	Jobs(ctx context.Context, keyword string) error
	Job(ctx context.Context, id string) error
	Apply(ctx context.Context, id string) error
	Bookmark(ctx context.Context, id string) error
	Bookmarks(ctx context.Context) error
	Profile(ctx context.Context) error
	Set(ctx context.Context, field string, value string) error
	AttachFile(ctx context.Context, slot string, path string) error
	ClearFile(ctx context.Context, slot string) error
	Save(ctx context.Context) error
	PostJob(ctx context.Context) error
	Applicants(ctx context.Context, jobID string) error
}

// runREPL starts a simple read–eval–print loop for the TalentHub CLI.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches to methods on 'a'. Unknown commands are reported
// back to the user. The loop exits on scanner EOF or when the user types
// "exit" or "quit".
//
// Any errors returned by command handlers are ignored here; handlers report
// their own errors. This keeps the loop resilient and focused on I/O.
func runREPL(ctx context.Context, a execIface, statusFn func() string, scanner *bufio.Scanner) {
	for {
		printlnFn(fmt.Sprintf("th %s> ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]
		args := parts[1:]

		switch cmd {
		case "help":
			if a.isLoggedIn() {
				printlnFn("Available commands: jobs [keyword], job <id>, apply <id>, bookmark <id>, bookmarks, profile, set <field> <value>, attach <slot> <path>, clearfile <slot>, save, postjob, applicants <jobId>, whoami, logout, exit")
			} else {
				printlnFn("Available commands: register, login, jobs [keyword], job <id>, bookmark <id>, bookmarks, exit")
			}

		case "register":
			_ = a.Register(ctx)

		case "login":
			_ = a.Login(ctx)

		case "logout":
			_ = a.Logout(ctx)

		case "whoami":
			_ = a.Whoami(ctx)

		case "jobs":
			_ = a.Jobs(ctx, strings.Join(args, " "))

		case "job":
			if len(args) == 0 {
				printlnFn("Usage: job <id>")
				continue
			}
			_ = a.Job(ctx, args[0])

		case "apply":
			if len(args) == 0 {
				printlnFn("Usage: apply <id>")
				continue
			}
			_ = a.Apply(ctx, args[0])

		case "bookmark":
			if len(args) == 0 {
				printlnFn("Usage: bookmark <id>")
				continue
			}
			_ = a.Bookmark(ctx, args[0])

		case "bookmarks":
			_ = a.Bookmarks(ctx)

		case "profile":
			_ = a.Profile(ctx)

		case "set":
			if len(args) < 2 {
				printlnFn("Usage: set <field> <value>")
				continue
			}
			_ = a.Set(ctx, args[0], strings.Join(args[1:], " "))

		case "attach":
			if len(args) < 2 {
				printlnFn("Usage: attach <slot> <path>")
				continue
			}
			_ = a.AttachFile(ctx, args[0], args[1])

		case "clearfile":
			if len(args) == 0 {
				printlnFn("Usage: clearfile <slot>")
				continue
			}
			_ = a.ClearFile(ctx, args[0])

		case "save":
			_ = a.Save(ctx)

		case "postjob":
			_ = a.PostJob(ctx)

		case "applicants":
			if len(args) == 0 {
				printlnFn("Usage: applicants <jobId>")
				continue
			}
			_ = a.Applicants(ctx, args[0])

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			printlnFn("Unknown command:", cmd)
		}
	}
}
