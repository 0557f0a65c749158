package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/dojo/internal/domain"
)

// SQLiteAttemptRepo implements AttemptRepo using a SQLite database.
type SQLiteAttemptRepo struct {
	db *sql.DB
}

// NewSQLiteAttemptRepo creates a new SQLiteAttemptRepo.
func NewSQLiteAttemptRepo(db *sql.DB) *SQLiteAttemptRepo {
	return &SQLiteAttemptRepo{db: db}
}

func (r *SQLiteAttemptRepo) Create(ctx context.Context, a *Attempt) error {
	query := `INSERT INTO attempts (id, kind, score, total, request_type, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		a.ID,
		string(a.Kind),
		a.Score,
		a.Total,
		a.RequestType,
		a.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting attempt: %w", err)
	}
	return nil
}

func (r *SQLiteAttemptRepo) ListRecent(ctx context.Context, limit int) ([]*Attempt, error) {
	query := `SELECT id, kind, score, total, request_type, created_at
		FROM attempts ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("listing recent attempts: %w", err)
	}
	defer rows.Close()
	return r.scanAttempts(rows)
}

func (r *SQLiteAttemptRepo) ListByKind(ctx context.Context, kind domain.AttemptKind, limit int) ([]*Attempt, error) {
	query := `SELECT id, kind, score, total, request_type, created_at
		FROM attempts WHERE kind = ? ORDER BY created_at DESC, id LIMIT ?`
	rows, err := r.db.QueryContext(ctx, query, string(kind), limit)
	if err != nil {
		return nil, fmt.Errorf("listing attempts by kind: %w", err)
	}
	defer rows.Close()
	return r.scanAttempts(rows)
}

func (r *SQLiteAttemptRepo) DeleteAll(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM attempts`); err != nil {
		return fmt.Errorf("deleting attempts: %w", err)
	}
	return nil
}

func (r *SQLiteAttemptRepo) scanAttempts(rows *sql.Rows) ([]*Attempt, error) {
	var attempts []*Attempt
	for rows.Next() {
		var a Attempt
		var kind, createdAtStr string

		if err := rows.Scan(&a.ID, &kind, &a.Score, &a.Total, &a.RequestType, &createdAtStr); err != nil {
			return nil, fmt.Errorf("scanning attempt row: %w", err)
		}
		a.Kind = domain.AttemptKind(kind)

		var parseErr error
		a.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
		if parseErr != nil {
			return nil, fmt.Errorf("parsing created_at: %w", parseErr)
		}

		attempts = append(attempts, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating attempts: %w", err)
	}
	return attempts, nil
}
