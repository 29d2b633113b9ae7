package bookmarks

import (
	"context"
	"fmt"

	"github.com/talenthub/talenthub-cli/internal/dbx"
)

type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Add(ctx context.Context, jobID string) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bookmarks (job_id) VALUES (?)
		ON CONFLICT(job_id) DO NOTHING
	`, jobID)
	if err != nil {
		return fmt.Errorf("failed to add bookmark[%s]: %w", jobID, err)
	}
	return nil
}

func (r *SQLiteRepository) Remove(ctx context.Context, jobID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM bookmarks WHERE job_id = ?`, jobID)
	if err != nil {
		return fmt.Errorf("failed to remove bookmark[%s]: %w", jobID, err)
	}
	return nil
}

func (r *SQLiteRepository) Contains(ctx context.Context, jobID string) (bool, error) {
	var n int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM bookmarks WHERE job_id = ?`, jobID).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("failed to check bookmark[%s]: %w", jobID, err)
	}
	return n > 0, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT job_id FROM bookmarks ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookmarks: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan bookmark row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bookmark rows: %w", err)
	}

	return ids, nil
}
