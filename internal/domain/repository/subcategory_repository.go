package repository

import (
	"context"

	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

// SubcategoryRepository define el puerto de persistencia para Subcategory (DIP).
type SubcategoryRepository interface {
	Create(ctx context.Context, subcategory *entity.Subcategory) error
	GetByID(ctx context.Context, id string) (*entity.Subcategory, error)
	Update(ctx context.Context, subcategory *entity.Subcategory) error
	List(ctx context.Context, scope access.Scope) ([]*entity.Subcategory, error)
	Delete(ctx context.Context, id string, scope access.Scope) (bool, error)
}
