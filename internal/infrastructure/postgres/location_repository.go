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

var _ repository.LocationRepository = (*LocationRepo)(nil)

// LocationRepo implementación del puerto LocationRepository sobre PostgreSQL.
type LocationRepo struct {
	db Querier
}

// NewLocationRepository construye el adaptador de persistencia para sedes.
func NewLocationRepository(db Querier) *LocationRepo {
	return &LocationRepo{db: db}
}

const locationColumns = `id, company_id, name, phone, fax, email,
		house_number, street, town, post_code, county, country, created_at, updated_at`

func scanLocation(row pgx.Row) (*entity.Location, error) {
	var l entity.Location
	err := row.Scan(
		&l.ID, &l.CompanyID, &l.Name, &l.Phone, &l.Fax, &l.Email,
		&l.Address.HouseNumber, &l.Address.Street, &l.Address.Town,
		&l.Address.PostCode, &l.Address.County, &l.Address.Country,
		&l.CreatedAt, &l.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &l, nil
}

// Create persiste una nueva sede.
func (r *LocationRepo) Create(ctx context.Context, location *entity.Location) error {
	query := `
		INSERT INTO locations (id, company_id, name, phone, fax, email,
			house_number, street, town, post_code, county, country, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.db.Exec(ctx, query,
		location.ID, location.CompanyID, location.Name, location.Phone, location.Fax, location.Email,
		location.Address.HouseNumber, location.Address.Street, location.Address.Town,
		location.Address.PostCode, location.Address.County, location.Address.Country,
		location.CreatedAt, location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert location: %w", translateErr(err))
	}
	return nil
}

// GetByID obtiene una sede por ID.
func (r *LocationRepo) GetByID(ctx context.Context, id string) (*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE id = $1`
	l, err := scanLocation(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get location: %w", err)
	}
	return l, nil
}

// Update actualiza una sede existente.
func (r *LocationRepo) Update(ctx context.Context, location *entity.Location) error {
	query := `
		UPDATE locations SET name = $2, phone = $3, fax = $4, email = $5,
			house_number = $6, street = $7, town = $8, post_code = $9,
			county = $10, country = $11, updated_at = $12
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		location.ID, location.Name, location.Phone, location.Fax, location.Email,
		location.Address.HouseNumber, location.Address.Street, location.Address.Town,
		location.Address.PostCode, location.Address.County, location.Address.Country,
		location.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update location: %w", translateErr(err))
	}
	return nil
}

// List lista sedes ordenadas por nombre aplicando el scope del principal.
// Para Location, scope.LocationIDs restringe el propio id del registro.
func (r *LocationRepo) List(ctx context.Context, scope access.Scope) ([]*entity.Location, error) {
	query := `SELECT ` + locationColumns + ` FROM locations WHERE company_id = $1`
	args := []any{scope.CompanyID}
	if scope.LocationIDs != nil {
		query += ` AND id = ANY($2)`
		args = append(args, scope.LocationIDs)
	}
	query += ` ORDER BY name`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	defer rows.Close()
	var list []*entity.Location
	for rows.Next() {
		l, err := scanLocation(rows)
		if err != nil {
			return nil, fmt.Errorf("scan location: %w", err)
		}
		list = append(list, l)
	}
	return list, rows.Err()
}

// Delete elimina una sede con el filtro de alcance embebido en la consulta.
func (r *LocationRepo) Delete(ctx context.Context, id string, scope access.Scope) (bool, error) {
	query := `DELETE FROM locations WHERE id = $1 AND company_id = $2`
	args := []any{id, scope.CompanyID}
	if scope.LocationIDs != nil {
		query += ` AND id = ANY($3)`
		args = append(args, scope.LocationIDs)
	}
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete location: %w", translateErr(err))
	}
	return cmd.RowsAffected() > 0, nil
}
