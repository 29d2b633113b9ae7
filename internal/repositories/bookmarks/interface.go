// Package bookmarks stores locally saved job IDs. Bookmarks never leave the
// client; they live next to the token slot in the local database.
package bookmarks

import "context"

type Repository interface {
	Add(ctx context.Context, jobID string) error
	Remove(ctx context.Context, jobID string) error
	Contains(ctx context.Context, jobID string) (bool, error)
	List(ctx context.Context) ([]string, error)
}
