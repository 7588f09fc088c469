package repository

import (
	"context"

	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

// SupplierRepository define el puerto de persistencia para Supplier (DIP).
// Los proveedores son globales: los listados no llevan scope. El borrado está
// deshabilitado a propósito y no forma parte del puerto.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *entity.Supplier) error
	GetByID(ctx context.Context, id string) (*entity.Supplier, error)
	Update(ctx context.Context, supplier *entity.Supplier) error
	List(ctx context.Context) ([]*entity.Supplier, error)
}
