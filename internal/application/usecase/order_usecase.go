package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
	"github.com/jhoicas/ordena-api/internal/domain/repository"
)

// OrderUseCase operaciones de acceso para Order. El pedido se ancla a una
// Location: esa location debe pertenecer a la empresa del principal y, para el
// rol User, estar en su conjunto asignado. Las escrituras (cabecera + líneas)
// van dentro de una transacción vía el OrderTxRunner.
type OrderUseCase struct {
	repo      repository.OrderRepository
	locations repository.LocationRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	tx        OrderTxRunner
	pdf       OrderPDFGenerator
	xml       OrderXMLBuilder
}

// NewOrderUseCase construye el caso de uso.
func NewOrderUseCase(
	repo repository.OrderRepository,
	locations repository.LocationRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	tx OrderTxRunner,
	pdf OrderPDFGenerator,
	xml OrderXMLBuilder,
) *OrderUseCase {
	return &OrderUseCase{
		repo:      repo,
		locations: locations,
		suppliers: suppliers,
		products:  products,
		tx:        tx,
		pdf:       pdf,
		xml:       xml,
	}
}

// List devuelve los pedidos visibles: los de la empresa para Admin, los de las
// locations asignadas para User.
func (uc *OrderUseCase) List(ctx context.Context, p access.Principal) ([]dto.OrderResponse, error) {
	list, err := uc.repo.List(ctx, access.ScopeFor(p, access.KindOrder))
	if err != nil {
		return nil, err
	}
	prices, err := uc.pricesFor(ctx, list...)
	if err != nil {
		return nil, err
	}
	items := make([]dto.OrderResponse, 0, len(list))
	for _, o := range list {
		items = append(items, *toOrderResponse(o, prices))
	}
	return items, nil
}

// GetByID obtiene un pedido; fuera de alcance es Forbidden.
func (uc *OrderUseCase) GetByID(ctx context.Context, p access.Principal, id string) (*dto.OrderResponse, error) {
	o, err := uc.authorizedOrder(ctx, p, id)
	if err != nil {
		return nil, err
	}
	prices, err := uc.pricesFor(ctx, o)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o, prices), nil
}

// Create crea un pedido en estado pending. La location debe ser del principal
// y el supplier y todos los productos deben existir.
func (uc *OrderUseCase) Create(ctx context.Context, p access.Principal, in dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if err := uc.resolveLocation(ctx, p, in.LocationID); err != nil {
		return nil, err
	}
	if err := uc.resolveSupplier(ctx, in.SupplierID); err != nil {
		return nil, err
	}
	items := toOrderItems(in.Items)
	if err := uc.resolveProducts(ctx, items); err != nil {
		return nil, err
	}
	now := time.Now()
	o := &entity.Order{
		ID:         uuid.New().String(),
		LocationID: in.LocationID,
		SupplierID: in.SupplierID,
		Status:     entity.OrderStatusPending,
		Items:      items,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	err := uc.tx.RunOrders(ctx, func(orders repository.OrderRepository) error {
		return orders.Create(ctx, o)
	})
	if err != nil {
		return nil, err
	}
	prices, err := uc.pricesFor(ctx, o)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(o, prices), nil
}

// Update actualiza un pedido existente. Items presentes reemplazan el conjunto
// completo de líneas; la escritura va en una transacción.
func (uc *OrderUseCase) Update(ctx context.Context, p access.Principal, id string, in dto.UpdateOrderRequest) error {
	if err := in.Validate(); err != nil {
		return err
	}
	o, err := uc.authorizedOrder(ctx, p, id)
	if err != nil {
		return err
	}
	if in.SupplierID != nil {
		if err := uc.resolveSupplier(ctx, *in.SupplierID); err != nil {
			return err
		}
		o.SupplierID = *in.SupplierID
	}
	if in.Status != nil {
		o.Status = *in.Status
	}
	if in.Items != nil {
		items := toOrderItems(in.Items)
		if err := uc.resolveProducts(ctx, items); err != nil {
			return err
		}
		o.Items = items
	}
	o.UpdatedAt = time.Now()
	return uc.tx.RunOrders(ctx, func(orders repository.OrderRepository) error {
		return orders.Update(ctx, o)
	})
}

// Delete elimina un pedido con el scope embebido en la consulta.
func (uc *OrderUseCase) Delete(ctx context.Context, p access.Principal, id string) error {
	if err := validateID(id); err != nil {
		return err
	}
	matched, err := uc.repo.Delete(ctx, id, access.ScopeFor(p, access.KindOrder))
	if err != nil {
		return err
	}
	if !matched {
		return domain.ErrNotFound
	}
	return nil
}

// Document resuelve las referencias del pedido para generar documentos.
func (uc *OrderUseCase) Document(ctx context.Context, p access.Principal, id string) (*OrderDocument, error) {
	o, err := uc.authorizedOrder(ctx, p, id)
	if err != nil {
		return nil, err
	}
	loc, err := uc.locations.GetByID(ctx, o.LocationID)
	if err != nil {
		return nil, err
	}
	sup, err := uc.suppliers.GetByID(ctx, o.SupplierID)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(o.Items))
	for _, it := range o.Items {
		ids = append(ids, it.ProductID)
	}
	prods, err := uc.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]*entity.Product, len(prods))
	prices := make(map[string]decimal.Decimal, len(prods))
	for _, pr := range prods {
		byID[pr.ID] = pr
		prices[pr.ID] = pr.Price
	}
	return &OrderDocument{
		Order:    o,
		Location: loc,
		Supplier: sup,
		Products: byID,
		Total:    o.Total(prices),
	}, nil
}

// RenderPDF genera el PDF del pedido para enviarlo al proveedor.
func (uc *OrderUseCase) RenderPDF(ctx context.Context, p access.Principal, id string) ([]byte, error) {
	doc, err := uc.Document(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return uc.pdf.GenerateOrderPDF(ctx, doc)
}

// RenderXML genera el documento XML del pedido.
func (uc *OrderUseCase) RenderXML(ctx context.Context, p access.Principal, id string) ([]byte, error) {
	doc, err := uc.Document(ctx, p, id)
	if err != nil {
		return nil, err
	}
	return uc.xml.BuildOrderXML(doc)
}

// authorizedOrder centraliza fetch + autorización: el tenant del pedido es el
// de su location, y para User además la location debe estar asignada.
func (uc *OrderUseCase) authorizedOrder(ctx context.Context, p access.Principal, id string) (*entity.Order, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}
	o, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o == nil {
		return nil, domain.ErrNotFound
	}
	loc, err := uc.locations.GetByID(ctx, o.LocationID)
	if err != nil {
		return nil, err
	}
	if loc == nil {
		return nil, domain.ErrNotFound
	}
	if !access.Allows(p, access.KindOrder, loc.CompanyID, o.LocationID) {
		return nil, domain.ErrForbidden
	}
	return o, nil
}

// resolveLocation exige que la location exista, sea de la empresa del
// principal y (para User) esté en su conjunto. Una location ajena se trata
// como referencia inválida, no como Forbidden: no se revela su existencia.
func (uc *OrderUseCase) resolveLocation(ctx context.Context, p access.Principal, locationID string) error {
	if uuid.Validate(locationID) != nil {
		return domain.ErrInvalidReference
	}
	loc, err := uc.locations.GetByID(ctx, locationID)
	if err != nil {
		return err
	}
	if loc == nil || loc.CompanyID != p.CompanyID {
		return domain.ErrInvalidReference
	}
	if p.Role == access.RoleUser && !p.HasLocation(locationID) {
		return domain.ErrForbidden
	}
	return nil
}

func (uc *OrderUseCase) resolveSupplier(ctx context.Context, supplierID string) error {
	if uuid.Validate(supplierID) != nil {
		return domain.ErrInvalidReference
	}
	s, err := uc.suppliers.GetByID(ctx, supplierID)
	if err != nil {
		return err
	}
	if s == nil {
		return domain.ErrInvalidReference
	}
	return nil
}

func (uc *OrderUseCase) resolveProducts(ctx context.Context, items []entity.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]string, 0, len(items))
	for _, it := range items {
		if uuid.Validate(it.ProductID) != nil {
			return domain.ErrInvalidReference
		}
		ids = append(ids, it.ProductID)
	}
	prods, err := uc.products.GetByIDs(ctx, ids)
	if err != nil {
		return err
	}
	found := make(map[string]bool, len(prods))
	for _, pr := range prods {
		found[pr.ID] = true
	}
	for _, it := range items {
		if !found[it.ProductID] {
			return domain.ErrInvalidReference
		}
	}
	return nil
}

// pricesFor carga en un solo viaje los precios de todos los productos que
// aparecen en los pedidos dados.
func (uc *OrderUseCase) pricesFor(ctx context.Context, orders ...*entity.Order) (map[string]decimal.Decimal, error) {
	seen := make(map[string]bool)
	var ids []string
	for _, o := range orders {
		for _, it := range o.Items {
			if !seen[it.ProductID] {
				seen[it.ProductID] = true
				ids = append(ids, it.ProductID)
			}
		}
	}
	prices := make(map[string]decimal.Decimal, len(ids))
	if len(ids) == 0 {
		return prices, nil
	}
	prods, err := uc.products.GetByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	for _, pr := range prods {
		prices[pr.ID] = pr.Price
	}
	return prices, nil
}

func toOrderItems(payload []dto.OrderItemPayload) []entity.OrderItem {
	items := make([]entity.OrderItem, 0, len(payload))
	for _, it := range payload {
		items = append(items, entity.OrderItem{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return items
}

func toOrderResponse(o *entity.Order, prices map[string]decimal.Decimal) *dto.OrderResponse {
	if o == nil {
		return nil
	}
	items := make([]dto.OrderItemPayload, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, dto.OrderItemPayload{ProductID: it.ProductID, Quantity: it.Quantity})
	}
	return &dto.OrderResponse{
		ID:         o.ID,
		LocationID: o.LocationID,
		SupplierID: o.SupplierID,
		Status:     o.Status,
		Items:      items,
		Total:      o.Total(prices),
		CreatedAt:  o.CreatedAt,
		UpdatedAt:  o.UpdatedAt,
	}
}
