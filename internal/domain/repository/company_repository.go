package repository

import (
	"context"

	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

// CompanyRepository define el puerto de persistencia para Company (DIP).
// List y Delete reciben el scope del principal: para Company el filtro
// restringe el propio id del registro.
type CompanyRepository interface {
	Create(ctx context.Context, company *entity.Company) error
	GetByID(ctx context.Context, id string) (*entity.Company, error)
	Update(ctx context.Context, company *entity.Company) error
	List(ctx context.Context, scope access.Scope) ([]*entity.Company, error)
	Delete(ctx context.Context, id string, scope access.Scope) (bool, error)
}
