package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// SQLiteMaterialRepo implements MaterialRepo using a SQLite database.
type SQLiteMaterialRepo struct {
	db *sql.DB
}

// NewSQLiteMaterialRepo creates a new SQLiteMaterialRepo.
func NewSQLiteMaterialRepo(db *sql.DB) *SQLiteMaterialRepo {
	return &SQLiteMaterialRepo{db: db}
}

func (r *SQLiteMaterialRepo) Create(ctx context.Context, m *domain.Material) error {
	query := `INSERT INTO materials (id, name, category, cost_per_sqm, waste_factor, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		m.ID,
		m.Name,
		m.Category,
		m.CostPerSqm,
		nullableFloatToValue(m.WasteFactor),
		m.CreatedAt.Format(time.RFC3339),
		m.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting material: %w", err)
	}
	return nil
}

func (r *SQLiteMaterialRepo) GetByID(ctx context.Context, id string) (*domain.Material, error) {
	query := `SELECT id, name, category, cost_per_sqm, waste_factor, created_at, updated_at
		FROM materials WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	m, err := scanMaterial(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("material not found")
	}
	return m, err
}

// GetByIDs batch-fetches materials by ID, silently omitting missing ones.
// A role without a configured material is a legitimate state, not an error.
func (r *SQLiteMaterialRepo) GetByIDs(ctx context.Context, ids []string) (map[string]domain.Material, error) {
	result := make(map[string]domain.Material, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	placeholders := strings.Repeat("?,", len(ids)-1) + "?"
	query := `SELECT id, name, category, cost_per_sqm, waste_factor, created_at, updated_at
		FROM materials WHERE id IN (` + placeholders + `)`
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("batch fetching materials: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		result[m.ID] = *m
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating materials: %w", err)
	}
	return result, nil
}

func (r *SQLiteMaterialRepo) List(ctx context.Context) ([]*domain.Material, error) {
	query := `SELECT id, name, category, cost_per_sqm, waste_factor, created_at, updated_at
		FROM materials ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("listing materials: %w", err)
	}
	defer rows.Close()

	var materials []*domain.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, err
		}
		materials = append(materials, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating materials: %w", err)
	}
	return materials, nil
}

func (r *SQLiteMaterialRepo) Update(ctx context.Context, m *domain.Material) error {
	query := `UPDATE materials SET name = ?, category = ?, cost_per_sqm = ?, waste_factor = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		m.Name,
		m.Category,
		m.CostPerSqm,
		nullableFloatToValue(m.WasteFactor),
		m.UpdatedAt.Format(time.RFC3339),
		m.ID,
	)
	if err != nil {
		return fmt.Errorf("updating material: %w", err)
	}
	return nil
}

func (r *SQLiteMaterialRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM materials WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting material: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanMaterial(row rowScanner) (*domain.Material, error) {
	var m domain.Material
	var waste sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(&m.ID, &m.Name, &m.Category, &m.CostPerSqm, &waste, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning material: %w", err)
	}
	if waste.Valid {
		m.WasteFactor = &waste.Float64
	}
	m.CreatedAt = parseTime(createdAt)
	m.UpdatedAt = parseTime(updatedAt)
	return &m, nil
}
