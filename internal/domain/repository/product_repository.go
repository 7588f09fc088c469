package repository

import (
	"context"

	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product (DIP).
// Los productos son globales (sin company); los listados no llevan scope.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []string) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	List(ctx context.Context) ([]*entity.Product, error)
	Delete(ctx context.Context, id string) (bool, error)
}
