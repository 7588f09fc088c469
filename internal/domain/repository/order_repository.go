package repository

import (
	"context"

	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

// OrderRepository define el puerto de persistencia para Order (DIP).
// El pedido hereda el tenant de su Location, así que el scope de List/Delete
// se aplica vía la location (company de la location + location_id).
type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context, scope access.Scope) ([]*entity.Order, error)
	Delete(ctx context.Context, id string, scope access.Scope) (bool, error)
}
