package repository

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/evcomply/compliance-checker-api/internal/models"
)

// ComponentRepository backs the project component database. Rows are
// append-only; there is no update or delete.
type ComponentRepository interface {
	Create(ctx context.Context, component *models.ProjectComponent) error
	List(ctx context.Context) ([]models.ProjectComponent, error)
	Count(ctx context.Context) (int, error)
}

type componentRepository struct {
	db *sqlx.DB
}

func NewComponentRepository(db *sqlx.DB) ComponentRepository {
	return &componentRepository{db: db}
}

func (r *componentRepository) Create(ctx context.Context, component *models.ProjectComponent) error {
	query := `
		INSERT INTO components (id, part_number, manufacturer, function, primary_rating, secondary_rating, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.db.ExecContext(ctx, query,
		component.ID,
		component.PartNumber,
		component.Manufacturer,
		component.Function,
		component.Primary,
		component.Secondary,
		component.CreatedAt,
	)

	return err
}

func (r *componentRepository) List(ctx context.Context) ([]models.ProjectComponent, error) {
	components := []models.ProjectComponent{}

	query := `
		SELECT id, part_number, manufacturer, function, primary_rating, secondary_rating, created_at
		FROM components
		ORDER BY created_at
	`

	if err := r.db.SelectContext(ctx, &components, query); err != nil {
		return nil, err
	}

	return components, nil
}

func (r *componentRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM components`)
	return count, err
}
