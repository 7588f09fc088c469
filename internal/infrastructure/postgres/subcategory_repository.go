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

var _ repository.SubcategoryRepository = (*SubcategoryRepo)(nil)

// SubcategoryRepo implementación del puerto SubcategoryRepository sobre PostgreSQL.
type SubcategoryRepo struct {
	db Querier
}

// NewSubcategoryRepository construye el adaptador de persistencia para subcategorías.
func NewSubcategoryRepository(db Querier) *SubcategoryRepo {
	return &SubcategoryRepo{db: db}
}

// Create persiste una nueva subcategoría.
func (r *SubcategoryRepo) Create(ctx context.Context, subcategory *entity.Subcategory) error {
	query := `
		INSERT INTO subcategories (id, company_id, category_id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		subcategory.ID, subcategory.CompanyID, subcategory.CategoryID,
		subcategory.Name, subcategory.CreatedAt, subcategory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert subcategory: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene una subcategoría por ID.
func (r *SubcategoryRepo) GetByID(ctx context.Context, id string) (*entity.Subcategory, error) {
	query := `
		SELECT id, company_id, category_id, name, created_at, updated_at
		FROM subcategories WHERE id = $1`
	var s entity.Subcategory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&s.ID, &s.CompanyID, &s.CategoryID, &s.Name, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return &s, nil
}

// Update actualiza una subcategoría existente.
func (r *SubcategoryRepo) Update(ctx context.Context, subcategory *entity.Subcategory) error {
	query := `
		UPDATE subcategories SET category_id = $2, name = $3, updated_at = $4
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		subcategory.ID, subcategory.CategoryID, subcategory.Name, subcategory.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update subcategory: %w", translateErr(err))
	}
	return nil
}

// List lista subcategorías de la empresa del principal ordenadas por nombre.
func (r *SubcategoryRepo) List(ctx context.Context, scope access.Scope) ([]*entity.Subcategory, error) {
	query := `
		SELECT id, company_id, category_id, name, created_at, updated_at
		FROM subcategories WHERE company_id = $1 ORDER BY name`
	rows, err := r.db.Query(ctx, query, scope.CompanyID)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()
	var list []*entity.Subcategory
	for rows.Next() {
		var s entity.Subcategory
		if err := rows.Scan(&s.ID, &s.CompanyID, &s.CategoryID, &s.Name, &s.CreatedAt, &s.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}

// Delete elimina una subcategoría con el filtro de alcance embebido en la consulta.
func (r *SubcategoryRepo) Delete(ctx context.Context, id string, scope access.Scope) (bool, error) {
	cmd, err := r.db.Exec(ctx,
		`DELETE FROM subcategories WHERE id = $1 AND company_id = $2`, id, scope.CompanyID)
	if err != nil {
		return false, fmt.Errorf("delete subcategory: %w", translateErr(err))
	}
	return cmd.RowsAffected() > 0, nil
}
