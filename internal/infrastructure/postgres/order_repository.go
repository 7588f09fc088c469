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

var _ repository.OrderRepository = (*OrderRepo)(nil)

// OrderRepo implementación del puerto OrderRepository sobre PostgreSQL.
// Un pedido son una cabecera (orders) y sus líneas (order_items); las
// escrituras deben correr dentro del TxRunner para no dejar filas huérfanas.
type OrderRepo struct {
	db Querier
}

// NewOrderRepository construye el adaptador de persistencia para pedidos.
func NewOrderRepository(db Querier) *OrderRepo {
	return &OrderRepo{db: db}
}

// Create persiste la cabecera y las líneas del pedido.
func (r *OrderRepo) Create(ctx context.Context, order *entity.Order) error {
	query := `
		INSERT INTO orders (id, location_id, supplier_id, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.db.Exec(ctx, query,
		order.ID, order.LocationID, order.SupplierID, order.Status,
		order.CreatedAt, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert order: %w", translateErr(err))
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

func (r *OrderRepo) insertItems(ctx context.Context, orderID string, items []entity.OrderItem) error {
	for _, it := range items {
		_, err := r.db.Exec(ctx,
			`INSERT INTO order_items (order_id, product_id, quantity) VALUES ($1, $2, $3)`,
			orderID, it.ProductID, it.Quantity,
		)
		if err != nil {
			return fmt.Errorf("insert order item: %w", translateErr(err))
		}
	}
	return nil
}

// GetByID obtiene un pedido con sus líneas.
func (r *OrderRepo) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	query := `
		SELECT id, location_id, supplier_id, status, created_at, updated_at
		FROM orders WHERE id = $1`
	var o entity.Order
	err := r.db.QueryRow(ctx, query, id).Scan(
		&o.ID, &o.LocationID, &o.SupplierID, &o.Status, &o.CreatedAt, &o.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	items, err := r.loadItems(ctx, []string{o.ID})
	if err != nil {
		return nil, err
	}
	o.Items = items[o.ID]
	return &o, nil
}

// Update reescribe la cabecera y reemplaza las líneas.
func (r *OrderRepo) Update(ctx context.Context, order *entity.Order) error {
	query := `
		UPDATE orders SET location_id = $2, supplier_id = $3, status = $4, updated_at = $5
		WHERE id = $1`
	_, err := r.db.Exec(ctx, query,
		order.ID, order.LocationID, order.SupplierID, order.Status, order.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update order: %w", translateErr(err))
	}
	if _, err := r.db.Exec(ctx, `DELETE FROM order_items WHERE order_id = $1`, order.ID); err != nil {
		return fmt.Errorf("clear order items: %w", err)
	}
	return r.insertItems(ctx, order.ID, order.Items)
}

// List lista pedidos aplicando el scope vía la location del pedido: company
// de la location y, para usuarios restringidos, pertenencia al conjunto.
func (r *OrderRepo) List(ctx context.Context, scope access.Scope) ([]*entity.Order, error) {
	query := `
		SELECT o.id, o.location_id, o.supplier_id, o.status, o.created_at, o.updated_at
		FROM orders o
		JOIN locations l ON l.id = o.location_id
		WHERE l.company_id = $1`
	args := []any{scope.CompanyID}
	if scope.LocationIDs != nil {
		query += ` AND o.location_id = ANY($2)`
		args = append(args, scope.LocationIDs)
	}
	query += ` ORDER BY o.created_at DESC`
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	defer rows.Close()
	var list []*entity.Order
	var ids []string
	for rows.Next() {
		var o entity.Order
		if err := rows.Scan(&o.ID, &o.LocationID, &o.SupplierID, &o.Status, &o.CreatedAt, &o.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan order: %w", err)
		}
		list = append(list, &o)
		ids = append(ids, o.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	items, err := r.loadItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, o := range list {
		o.Items = items[o.ID]
	}
	return list, nil
}

func (r *OrderRepo) loadItems(ctx context.Context, orderIDs []string) (map[string][]entity.OrderItem, error) {
	out := make(map[string][]entity.OrderItem, len(orderIDs))
	if len(orderIDs) == 0 {
		return out, nil
	}
	rows, err := r.db.Query(ctx,
		`SELECT order_id, product_id, quantity FROM order_items WHERE order_id = ANY($1)`, orderIDs)
	if err != nil {
		return nil, fmt.Errorf("load order items: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var orderID string
		var it entity.OrderItem
		if err := rows.Scan(&orderID, &it.ProductID, &it.Quantity); err != nil {
			return nil, fmt.Errorf("scan order item: %w", err)
		}
		out[orderID] = append(out[orderID], it)
	}
	return out, rows.Err()
}

// Delete elimina un pedido con el filtro de alcance embebido: borrar un pedido
// de otro tenant (o de una location fuera del conjunto) no afecta filas.
func (r *OrderRepo) Delete(ctx context.Context, id string, scope access.Scope) (bool, error) {
	query := `
		DELETE FROM orders o USING locations l
		WHERE o.id = $1 AND l.id = o.location_id AND l.company_id = $2`
	args := []any{id, scope.CompanyID}
	if scope.LocationIDs != nil {
		query += ` AND o.location_id = ANY($3)`
		args = append(args, scope.LocationIDs)
	}
	cmd, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete order: %w", translateErr(err))
	}
	return cmd.RowsAffected() > 0, nil
}
