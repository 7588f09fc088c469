package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
	"github.com/jhoicas/ordena-api/internal/domain/repository"
)

var _ repository.TemplateRepository = (*TemplateRepo)(nil)

// TemplateRepo implementación del puerto TemplateRepository sobre PostgreSQL.
type TemplateRepo struct {
	db Querier
}

// NewTemplateRepository construye el adaptador de persistencia para plantillas.
func NewTemplateRepository(db Querier) *TemplateRepo {
	return &TemplateRepo{db: db}
}

// Create persiste una nueva plantilla de pedido recurrente.
func (r *TemplateRepo) Create(ctx context.Context, template *entity.Template) error {
	query := `
		INSERT INTO templates (id, company_id, location_id, supplier_id, order_days, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.db.Exec(ctx, query,
		template.ID, template.CompanyID, template.LocationID, template.SupplierID,
		template.OrderDays, template.CreatedAt, template.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert template: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene una plantilla por ID.
func (r *TemplateRepo) GetByID(ctx context.Context, id string) (*entity.Template, error) {
	query := `
		SELECT id, company_id, location_id, supplier_id, order_days, created_at, updated_at
		FROM templates WHERE id = $1`
	var t entity.Template
	err := r.db.QueryRow(ctx, query, id).Scan(
		&t.ID, &t.CompanyID, &t.LocationID, &t.SupplierID, &t.OrderDays, &t.CreatedAt, &t.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get template: %w", err)
	}
	return &t, nil
}

// Update actualiza una plantilla existente.
func (r *TemplateRepo) Update(ctx context.Context, template *entity.Template) error {
	query := `
		UPDATE templates SET location_id = $2, supplier_id = $3, order_days = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		template.ID, template.LocationID, template.SupplierID, template.OrderDays, template.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update template: %w", translateErr(err))
	}
	return nil
}

// List lista plantillas aplicando el scope del principal.
func (r *TemplateRepo) List(ctx context.Context, scope access.Scope) ([]*entity.Template, error) {
	query := `
		SELECT id, company_id, location_id, supplier_id, order_days, created_at, updated_at
		FROM templates WHERE company_id = $1`
	args := []any{scope.CompanyID}
	if scope.LocationIDs != nil {
		query += ` AND location_id = ANY($2)`
		args = append(args, scope.LocationIDs)
	}
	query += ` ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}
	defer rows.Close()
	var list []*entity.Template
	for rows.Next() {
		var t entity.Template
		if err := rows.Scan(&t.ID, &t.CompanyID, &t.LocationID, &t.SupplierID, &t.OrderDays, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan template: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}

// Delete elimina una plantilla con el filtro de alcance embebido en la consulta.
func (r *TemplateRepo) Delete(ctx context.Context, id string, scope access.Scope) (bool, error) {
	query := `DELETE FROM templates WHERE id = $1 AND company_id = $2`
	args := []any{id, scope.CompanyID}
	if scope.LocationIDs != nil {
		query += ` AND location_id = ANY($3)`
		args = append(args, scope.LocationIDs)
	}
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete template: %w", translateErr(err))
	}
	return cmd.RowsAffected() > 0, nil
}
