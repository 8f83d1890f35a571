package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// SQLiteQuoteRepo implements QuoteRepo using a SQLite database. The full
// breakdown is snapshotted as JSON so a finalized quote keeps its figures
// even after the model or catalog changes.
type SQLiteQuoteRepo struct {
	db *sql.DB
}

// NewSQLiteQuoteRepo creates a new SQLiteQuoteRepo.
func NewSQLiteQuoteRepo(db *sql.DB) *SQLiteQuoteRepo {
	return &SQLiteQuoteRepo{db: db}
}

func (r *SQLiteQuoteRepo) Create(ctx context.Context, q *domain.Quote) error {
	breakdown, err := json.Marshal(q.Breakdown)
	if err != nil {
		return fmt.Errorf("encoding breakdown: %w", err)
	}
	query := `INSERT INTO quotes (id, configuration_id, model_id, label, status, breakdown, total_cost, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		q.ID,
		q.ConfigurationID,
		q.ModelID,
		q.Label,
		string(q.Status),
		string(breakdown),
		q.TotalCost,
		q.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting quote: %w", err)
	}
	return nil
}

func (r *SQLiteQuoteRepo) GetByID(ctx context.Context, id string) (*domain.Quote, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, configuration_id, model_id, label, status, breakdown, total_cost, created_at
		 FROM quotes WHERE id = ?`, id)
	q, err := scanQuote(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("quote not found")
	}
	return q, err
}

func (r *SQLiteQuoteRepo) ListByConfiguration(ctx context.Context, configurationID string) ([]*domain.Quote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, configuration_id, model_id, label, status, breakdown, total_cost, created_at
		 FROM quotes WHERE configuration_id = ? ORDER BY created_at`, configurationID)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	return collectQuotes(rows)
}

func (r *SQLiteQuoteRepo) List(ctx context.Context) ([]*domain.Quote, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, configuration_id, model_id, label, status, breakdown, total_cost, created_at
		 FROM quotes ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing quotes: %w", err)
	}
	return collectQuotes(rows)
}

func (r *SQLiteQuoteRepo) Finalize(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE quotes SET status = 'finalized' WHERE id = ? AND status = 'draft'`, id)
	if err != nil {
		return fmt.Errorf("finalizing quote: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("finalizing quote: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("quote not found or already finalized")
	}
	return nil
}

func (r *SQLiteQuoteRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM quotes WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting quote: %w", err)
	}
	return nil
}

func collectQuotes(rows *sql.Rows) ([]*domain.Quote, error) {
	defer rows.Close()

	var quotes []*domain.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating quotes: %w", err)
	}
	return quotes, nil
}

func scanQuote(row rowScanner) (*domain.Quote, error) {
	var q domain.Quote
	var status, breakdown, createdAt string

	err := row.Scan(&q.ID, &q.ConfigurationID, &q.ModelID, &q.Label, &status, &breakdown, &q.TotalCost, &createdAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning quote: %w", err)
	}
	if err := json.Unmarshal([]byte(breakdown), &q.Breakdown); err != nil {
		return nil, fmt.Errorf("decoding breakdown: %w", err)
	}
	q.Status = domain.QuoteStatus(status)
	q.CreatedAt = parseTime(createdAt)
	return &q, nil
}
