package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// SQLiteModelRepo implements ModelRepo using a SQLite database. Model
// parameters are stored as a JSON document; the declarative panel/front/
// compartment structure has no relational consumers.
type SQLiteModelRepo struct {
	db *sql.DB
}

// NewSQLiteModelRepo creates a new SQLiteModelRepo.
func NewSQLiteModelRepo(db *sql.DB) *SQLiteModelRepo {
	return &SQLiteModelRepo{db: db}
}

func (r *SQLiteModelRepo) Create(ctx context.Context, m *domain.CabinetModel) error {
	params, err := json.Marshal(m.Parameters)
	if err != nil {
		return fmt.Errorf("encoding model parameters: %w", err)
	}
	query := `INSERT INTO cabinet_models (id, name, description, parameters, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		m.Description,
		string(params),
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting cabinet model: %w", err)
	}
	return nil
}

func (r *SQLiteModelRepo) GetByID(ctx context.Context, id string) (*domain.CabinetModel, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, parameters, created_at, updated_at
		 FROM cabinet_models WHERE id = ?`, id)
	m, err := scanModel(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cabinet model not found")
	}
	return m, err
}

func (r *SQLiteModelRepo) GetByName(ctx context.Context, name string) (*domain.CabinetModel, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, name, description, parameters, created_at, updated_at
		 FROM cabinet_models WHERE name = ?`, name)
	m, err := scanModel(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("cabinet model not found")
	}
	return m, err
}

func (r *SQLiteModelRepo) List(ctx context.Context) ([]*domain.CabinetModel, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, name, description, parameters, created_at, updated_at
		 FROM cabinet_models ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("listing cabinet models: %w", err)
	}
	defer rows.Close()

	var models []*domain.CabinetModel
	for rows.Next() {
		m, err := scanModel(rows)
		if err != nil {
			return nil, err
		}
		models = append(models, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cabinet models: %w", err)
	}
	return models, nil
}

func (r *SQLiteModelRepo) Update(ctx context.Context, m *domain.CabinetModel) error {
	params, err := json.Marshal(m.Parameters)
	if err != nil {
		return fmt.Errorf("encoding model parameters: %w", err)
	}
	query := `UPDATE cabinet_models SET name = ?, description = ?, parameters = ?, updated_at = ?
		WHERE id = ?`
	_, err = r.db.ExecContext(ctx, query,
		m.Name,
		m.Description,
		string(params),
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating cabinet model: %w", err)
	}
	return nil
}

func (r *SQLiteModelRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM cabinet_models WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting cabinet model: %w", err)
	}
	return nil
}

func scanModel(row rowScanner) (*domain.CabinetModel, error) {
	var m domain.CabinetModel
	var params string
	var createdAt, updatedAt string

	err := row.Scan(&m.ID, &m.Name, &m.Description, &params, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning cabinet model: %w", err)
	}
	if err := json.Unmarshal([]byte(params), &m.Parameters); err != nil {
		return nil, fmt.Errorf("decoding model parameters: %w", err)
	}
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return &m, nil
}
