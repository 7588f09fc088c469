package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

const (
	supplier1 = "88888888-8888-8888-8888-888888888888"
	product1  = "99999999-9999-9999-9999-000000000001"
	product2  = "99999999-9999-9999-9999-000000000002"
)

type orderFixture struct {
	orders    *fakeOrderRepo
	locations *fakeLocationRepo
	suppliers *fakeSupplierRepo
	products  *fakeProductRepo
	uc        *usecase.OrderUseCase
}

func newOrderFixture(t *testing.T) *orderFixture {
	t.Helper()
	locations := newFakeLocationRepo()
	suppliers := newFakeSupplierRepo()
	products := newFakeProductRepo()
	orders := newFakeOrderRepo(locations)
	tx := &fakeTxRunner{orders: orders, templates: newFakeTemplateRepo()}

	ctx := context.Background()
	require.NoError(t, locations.Create(ctx, &entity.Location{ID: loc1, CompanyID: companyA, Name: "Sede 1"}))
	require.NoError(t, locations.Create(ctx, &entity.Location{ID: loc2, CompanyID: companyB, Name: "Sede ajena"}))
	require.NoError(t, suppliers.Create(ctx, &entity.Supplier{ID: supplier1, Name: "Proveedor"}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: product1, Name: "Harina", SupplierID: supplier1, Price: decimal.NewFromFloat(2.50)}))
	require.NoError(t, products.Create(ctx, &entity.Product{ID: product2, Name: "Azúcar", SupplierID: supplier1, Price: decimal.NewFromFloat(1.25)}))

	return &orderFixture{
		orders:    orders,
		locations: locations,
		suppliers: suppliers,
		products:  products,
		uc:        usecase.NewOrderUseCase(orders, locations, suppliers, products, tx, nil, nil),
	}
}

func TestOrderCreate_PendienteYConTotal(t *testing.T) {
	f := newOrderFixture(t)

	out, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateOrderRequest{
		LocationID: loc1,
		SupplierID: supplier1,
		Items: []dto.OrderItemPayload{
			{ProductID: product1, Quantity: 4}, // 4 × 2.50 = 10.00
			{ProductID: product2, Quantity: 2}, // 2 × 1.25 = 2.50
		},
	})
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusPending, out.Status)
	assert.True(t, decimal.NewFromFloat(12.50).Equal(out.Total), "total = Σ qty × price, got %s", out.Total)
	assert.Len(t, out.Items, 2)
}

func TestOrderCreate_LocationDeOtroTenant_ReferenciaInvalida(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateOrderRequest{
		LocationID: loc2,
		SupplierID: supplier1,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference,
		"una location ajena se trata como referencia inválida, no se revela su existencia")
}

func TestOrderCreate_UserFueraDeSuLocation_Forbidden(t *testing.T) {
	f := newOrderFixture(t)

	// Usuario de company A pero sin loc1 asignada.
	_, err := f.uc.Create(context.Background(), userOf(companyA), dto.CreateOrderRequest{
		LocationID: loc1,
		SupplierID: supplier1,
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestOrderCreate_ProductoInexistente_ReferenciaInvalida(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateOrderRequest{
		LocationID: loc1,
		SupplierID: supplier1,
		Items:      []dto.OrderItemPayload{{ProductID: "99999999-9999-9999-9999-000000000099", Quantity: 1}},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestOrderCreate_CantidadFueraDeRango_Validacion(t *testing.T) {
	f := newOrderFixture(t)

	_, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateOrderRequest{
		LocationID: loc1,
		SupplierID: supplier1,
		Items:      []dto.OrderItemPayload{{ProductID: product1, Quantity: 256}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.Create(context.Background(), adminOf(companyA), dto.CreateOrderRequest{
		LocationID: loc1,
		SupplierID: supplier1,
		Items:      []dto.OrderItemPayload{{ProductID: product1, Quantity: -1}},
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func (f *orderFixture) seedOrder(t *testing.T, id, locationID string) {
	t.Helper()
	require.NoError(t, f.orders.Create(context.Background(), &entity.Order{
		ID:         id,
		LocationID: locationID,
		SupplierID: supplier1,
		Status:     entity.OrderStatusPending,
		Items:      []entity.OrderItem{{ProductID: product1, Quantity: 1}},
	}))
}

func TestOrderGetByID_UserLocationNoAsignada_Forbidden(t *testing.T) {
	f := newOrderFixture(t)
	orderID := "aaaaaaaa-aaaa-4aaa-8aaa-000000000001"
	f.seedOrder(t, orderID, loc1)

	// Mismo tenant, location no asignada.
	_, err := f.uc.GetByID(context.Background(), userOf(companyA, loc2), orderID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	// Con la location asignada sí pasa.
	out, err := f.uc.GetByID(context.Background(), userOf(companyA, loc1), orderID)
	require.NoError(t, err)
	assert.Equal(t, orderID, out.ID)
}

func TestOrderList_UserSoloSusLocations(t *testing.T) {
	f := newOrderFixture(t)
	f.seedOrder(t, "aaaaaaaa-aaaa-4aaa-8aaa-000000000001", loc1)
	f.seedOrder(t, "aaaaaaaa-aaaa-4aaa-8aaa-000000000002", loc2)

	out, err := f.uc.List(context.Background(), userOf(companyA, loc1))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, loc1, out[0].LocationID)
}

func TestOrderDelete_OtroTenant_NotFound(t *testing.T) {
	f := newOrderFixture(t)
	orderID := "aaaaaaaa-aaaa-4aaa-8aaa-000000000002"
	f.seedOrder(t, orderID, loc2) // pedido del tenant B

	err := f.uc.Delete(context.Background(), adminOf(companyA), orderID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, _ := f.orders.GetByID(context.Background(), orderID)
	assert.NotNil(t, stored)
}

func TestOrderUpdate_ReemplazaLineas(t *testing.T) {
	f := newOrderFixture(t)
	orderID := "aaaaaaaa-aaaa-4aaa-8aaa-000000000001"
	f.seedOrder(t, orderID, loc1)

	placed := entity.OrderStatusPlaced
	err := f.uc.Update(context.Background(), adminOf(companyA), orderID, dto.UpdateOrderRequest{
		Status: &placed,
		Items:  []dto.OrderItemPayload{{ProductID: product2, Quantity: 3}},
	})
	require.NoError(t, err)

	stored, _ := f.orders.GetByID(context.Background(), orderID)
	assert.Equal(t, entity.OrderStatusPlaced, stored.Status)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, product2, stored.Items[0].ProductID)
}

func TestOrderUpdate_EstadoDesconocido_Validacion(t *testing.T) {
	f := newOrderFixture(t)
	orderID := "aaaaaaaa-aaaa-4aaa-8aaa-000000000001"
	f.seedOrder(t, orderID, loc1)

	raro := "shipped"
	err := f.uc.Update(context.Background(), adminOf(companyA), orderID, dto.UpdateOrderRequest{Status: &raro})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestOrderDocument_ResuelveReferencias(t *testing.T) {
	f := newOrderFixture(t)
	orderID := "aaaaaaaa-aaaa-4aaa-8aaa-000000000001"
	f.seedOrder(t, orderID, loc1)

	doc, err := f.uc.Document(context.Background(), adminOf(companyA), orderID)
	require.NoError(t, err)

	assert.Equal(t, loc1, doc.Location.ID)
	assert.Equal(t, supplier1, doc.Supplier.ID)
	require.Contains(t, doc.Products, product1)
	assert.True(t, decimal.NewFromFloat(2.50).Equal(doc.Total))
}
