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

var _ repository.CompanyRepository = (*CompanyRepo)(nil)

// CompanyRepo implementación del puerto CompanyRepository sobre PostgreSQL.
type CompanyRepo struct {
	db Querier
}

// NewCompanyRepository construye el adaptador de persistencia para empresas.
func NewCompanyRepository(db Querier) *CompanyRepo {
	return &CompanyRepo{db: db}
}

// Create persiste una nueva empresa.
func (r *CompanyRepo) Create(ctx context.Context, company *entity.Company) error {
	query := `
		INSERT INTO companies (id, name, email, phone, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Email, company.Phone,
		company.CreatedAt, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert company: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene una empresa por ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*entity.Company, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM companies WHERE id = $1`
	var c entity.Company
	err := r.db.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company: %w", err)
	}
	return &c, nil
}

// Update actualiza una empresa existente.
func (r *CompanyRepo) Update(ctx context.Context, company *entity.Company) error {
	query := `
		UPDATE companies SET name = $2, email = $3, phone = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		company.ID, company.Name, company.Email, company.Phone, company.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update company: %w", translateErr(err))
	}
	return nil
}

// List lista empresas ordenadas por nombre. Para Company el scope restringe
// el propio id: un principal solo ve su empresa.
func (r *CompanyRepo) List(ctx context.Context, scope access.Scope) ([]*entity.Company, error) {
	query := `
		SELECT id, name, email, phone, created_at, updated_at
		FROM companies`
	args := []any{}
	if scope.CompanyID != "" {
		query += ` WHERE id = $1`
		args = append(args, scope.CompanyID)
	}
	query += ` ORDER BY name`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()
	var list []*entity.Company
	for rows.Next() {
		var c entity.Company
		if err := rows.Scan(&c.ID, &c.Name, &c.Email, &c.Phone, &c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan company: %w", err)
		}
		list = append(list, &c)
	}
	return list, rows.Err()
}

// Delete elimina una empresa. El filtro de alcance viaja en el propio DELETE:
// borrar la empresa de otro tenant no afecta filas y devuelve false.
func (r *CompanyRepo) Delete(ctx context.Context, id string, scope access.Scope) (bool, error) {
	query := `DELETE FROM companies WHERE id = $1`
	args := []any{id}
	if scope.CompanyID != "" {
		query += ` AND id = $2`
		args = append(args, scope.CompanyID)
	}
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete company: %w", translateErr(err))
	}
	return cmd.RowsAffected() > 0, nil
}
