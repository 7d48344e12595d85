package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/enrico07/feddit-api/internal/domain"
)

// CommentRepo implements domain.CommentStore backed by PostgreSQL.
type CommentRepo struct {
	pool *pgxpool.Pool
}

// NewCommentRepo creates a CommentRepo from the shared connection pool.
func NewCommentRepo(pool *pgxpool.Pool) *CommentRepo {
	return &CommentRepo{pool: pool}
}

// ResolveSubfedditID looks up a subfeddit by exact title match.
func (r *CommentRepo) ResolveSubfedditID(ctx context.Context, name string) (int64, error) {
	var id int64
	err := r.pool.QueryRow(ctx, `SELECT id FROM subfeddit WHERE title = $1`, name).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, domain.ErrSubfedditNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("failed to resolve subfeddit %q: %w", name, err)
	}
	return id, nil
}

// FetchComments returns up to limit comments of the subfeddit, newest first.
// The date bounds are inclusive unix-timestamp comparisons; the caller is
// responsible for turning calendar dates into timestamps.
func (r *CommentRepo) FetchComments(ctx context.Context, subfedditID int64, from, to *time.Time, limit int) ([]domain.Comment, error) {
	query := `SELECT id, subfeddit_id, text, created_at FROM comment WHERE subfeddit_id = $1`
	args := []any{subfedditID}

	if from != nil {
		args = append(args, from.Unix())
		query += fmt.Sprintf(" AND created_at >= $%d", len(args))
	}
	if to != nil {
		args = append(args, to.Unix())
		query += fmt.Sprintf(" AND created_at <= $%d", len(args))
	}

	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY created_at DESC LIMIT $%d", len(args))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch comments: %w", err)
	}
	defer rows.Close()

	var comments []domain.Comment
	for rows.Next() {
		var c domain.Comment
		if err := rows.Scan(&c.ID, &c.SubfedditID, &c.Text, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		comments = append(comments, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read comment rows: %w", err)
	}

	return comments, nil
}
