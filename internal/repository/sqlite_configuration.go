package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/alexanderramin/cabquote/internal/domain"
)

// SQLiteConfigurationRepo implements ConfigurationRepo using a SQLite database.
type SQLiteConfigurationRepo struct {
	db *sql.DB
}

// NewSQLiteConfigurationRepo creates a new SQLiteConfigurationRepo.
func NewSQLiteConfigurationRepo(db *sql.DB) *SQLiteConfigurationRepo {
	return &SQLiteConfigurationRepo{db: db}
}

const configurationColumns = `id, model_id, name, width_mm, height_mm, depth_mm,
	body_material_id, door_material_id, shelf_material_id,
	body_thickness, door_thickness, shelf_thickness, created_at, updated_at`

func (r *SQLiteConfigurationRepo) Create(ctx context.Context, c *domain.CabinetConfiguration) error {
	query := `INSERT INTO configurations (` + configurationColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ModelID,
		c.Name,
		c.WidthMM,
		c.HeightMM,
		c.DepthMM,
		nullIfEmpty(c.Materials.BodyMaterialID),
		nullIfEmpty(c.Materials.DoorMaterialID),
		nullIfEmpty(c.Materials.ShelfMaterialID),
		nullableFloatToValue(c.Materials.BodyThicknessMM),
		nullableFloatToValue(c.Materials.DoorThicknessMM),
		nullableFloatToValue(c.Materials.ShelfThicknessMM),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting configuration: %w", err)
	}
	return nil
}

func (r *SQLiteConfigurationRepo) GetByID(ctx context.Context, id string) (*domain.CabinetConfiguration, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+configurationColumns+` FROM configurations WHERE id = ?`, id)
	c, err := scanConfiguration(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("configuration not found")
	}
	return c, err
}

func (r *SQLiteConfigurationRepo) ListByModel(ctx context.Context, modelID string) ([]*domain.CabinetConfiguration, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+configurationColumns+` FROM configurations WHERE model_id = ? ORDER BY created_at`, modelID)
	if err != nil {
		return nil, fmt.Errorf("listing configurations: %w", err)
	}
	return collectConfigurations(rows)
}

func (r *SQLiteConfigurationRepo) List(ctx context.Context) ([]*domain.CabinetConfiguration, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+configurationColumns+` FROM configurations ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("listing configurations: %w", err)
	}
	return collectConfigurations(rows)
}

func (r *SQLiteConfigurationRepo) Update(ctx context.Context, c *domain.CabinetConfiguration) error {
	query := `UPDATE configurations SET name = ?, width_mm = ?, height_mm = ?, depth_mm = ?,
		body_material_id = ?, door_material_id = ?, shelf_material_id = ?,
		body_thickness = ?, door_thickness = ?, shelf_thickness = ?, updated_at = ?
		WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.WidthMM,
		c.HeightMM,
		c.DepthMM,
		nullIfEmpty(c.Materials.BodyMaterialID),
		nullIfEmpty(c.Materials.DoorMaterialID),
		nullIfEmpty(c.Materials.ShelfMaterialID),
		nullableFloatToValue(c.Materials.BodyThicknessMM),
		nullableFloatToValue(c.Materials.DoorThicknessMM),
		nullableFloatToValue(c.Materials.ShelfThicknessMM),
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return fmt.Errorf("updating configuration: %w", err)
	}
	return nil
}

func (r *SQLiteConfigurationRepo) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM configurations WHERE id = ?`, id); err != nil {
		return fmt.Errorf("deleting configuration: %w", err)
	}
	return nil
}

func collectConfigurations(rows *sql.Rows) ([]*domain.CabinetConfiguration, error) {
	defer rows.Close()

	var configs []*domain.CabinetConfiguration
	for rows.Next() {
		c, err := scanConfiguration(rows)
		if err != nil {
			return nil, err
		}
		configs = append(configs, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating configurations: %w", err)
	}
	return configs, nil
}

func scanConfiguration(row rowScanner) (*domain.CabinetConfiguration, error) {
	var c domain.CabinetConfiguration
	var bodyMat, doorMat, shelfMat sql.NullString
	var bodyTh, doorTh, shelfTh sql.NullFloat64
	var createdAt, updatedAt string

	err := row.Scan(&c.ID, &c.ModelID, &c.Name, &c.WidthMM, &c.HeightMM, &c.DepthMM,
		&bodyMat, &doorMat, &shelfMat, &bodyTh, &doorTh, &shelfTh, &createdAt, &updatedAt)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("scanning configuration: %w", err)
	}

	c.Materials.BodyMaterialID = bodyMat.String
	c.Materials.DoorMaterialID = doorMat.String
	c.Materials.ShelfMaterialID = shelfMat.String
	if bodyTh.Valid {
		c.Materials.BodyThicknessMM = &bodyTh.Float64
	}
	if doorTh.Valid {
		c.Materials.DoorThicknessMM = &doorTh.Float64
	}
	if shelfTh.Valid {
		c.Materials.ShelfThicknessMM = &shelfTh.Float64
	}
	c.CreatedAt = parseTime(createdAt)
	c.UpdatedAt = parseTime(updatedAt)
	return &c, nil
}

func nullIfEmpty(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
