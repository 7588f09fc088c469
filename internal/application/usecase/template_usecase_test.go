package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

type templateFixture struct {
	templates *fakeTemplateRepo
	locations *fakeLocationRepo
	suppliers *fakeSupplierRepo
	uc        *usecase.TemplateUseCase
}

func newTemplateFixture(t *testing.T) *templateFixture {
	t.Helper()
	locations := newFakeLocationRepo()
	suppliers := newFakeSupplierRepo()
	templates := newFakeTemplateRepo()
	tx := &fakeTxRunner{templates: templates, orders: newFakeOrderRepo(locations)}

	ctx := context.Background()
	require.NoError(t, locations.Create(ctx, &entity.Location{ID: loc1, CompanyID: companyA, Name: "Sede 1"}))
	require.NoError(t, locations.Create(ctx, &entity.Location{
		ID: "33333333-3333-3333-3333-000000000003", CompanyID: companyA, Name: "Sede 3"}))
	require.NoError(t, locations.Create(ctx, &entity.Location{ID: loc2, CompanyID: companyB, Name: "Ajena"}))
	require.NoError(t, suppliers.Create(ctx, &entity.Supplier{ID: supplier1, Name: "Proveedor"}))

	return &templateFixture{
		templates: templates,
		locations: locations,
		suppliers: suppliers,
		uc:        usecase.NewTemplateUseCase(templates, locations, suppliers, tx),
	}
}

func orderDays() []time.Time {
	return []time.Time{
		time.Date(2026, time.September, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.September, 8, 0, 0, 0, 0, time.UTC),
	}
}

func TestTemplateCreate_UnaPorLocation(t *testing.T) {
	f := newTemplateFixture(t)
	loc3 := "33333333-3333-3333-3333-000000000003"

	out, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateTemplateRequest{
		LocationIDs: []string{loc1, loc3},
		SupplierID:  supplier1,
		OrderDays:   orderDays(),
	})
	require.NoError(t, err)

	require.Len(t, out, 2)
	assert.Len(t, f.templates.items, 2)
	locs := []string{out[0].LocationID, out[1].LocationID}
	assert.ElementsMatch(t, []string{loc1, loc3}, locs)
	for _, tpl := range out {
		assert.Equal(t, companyA, tpl.CompanyID)
		assert.Equal(t, supplier1, tpl.SupplierID)
	}
}

// El lote es atómico: si la segunda creación falla no queda ninguna.
func TestTemplateCreate_LoteAtomico(t *testing.T) {
	f := newTemplateFixture(t)
	f.templates.failAfter = 1
	loc3 := "33333333-3333-3333-3333-000000000003"

	_, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateTemplateRequest{
		LocationIDs: []string{loc1, loc3},
		SupplierID:  supplier1,
		OrderDays:   orderDays(),
	})
	require.Error(t, err)
	assert.Empty(t, f.templates.items, "tras el rollback no debe quedar ninguna plantilla del lote")
}

// Una location ajena en el lote invalida el lote completo antes de escribir.
func TestTemplateCreate_LocationAjenaInvalidaElLote(t *testing.T) {
	f := newTemplateFixture(t)

	_, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateTemplateRequest{
		LocationIDs: []string{loc1, loc2},
		SupplierID:  supplier1,
		OrderDays:   orderDays(),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.Empty(t, f.templates.items)
}

func TestTemplateCreate_LoteVacio_Validacion(t *testing.T) {
	f := newTemplateFixture(t)

	_, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateTemplateRequest{
		SupplierID: supplier1,
		OrderDays:  orderDays(),
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTemplateGetByID_UserLocationNoAsignada_Forbidden(t *testing.T) {
	f := newTemplateFixture(t)
	tplID := "bbbbbbbb-bbbb-4bbb-8bbb-000000000001"
	require.NoError(t, f.templates.Create(context.Background(), &entity.Template{
		ID: tplID, CompanyID: companyA, LocationID: loc1, SupplierID: supplier1, OrderDays: orderDays(),
	}))

	_, err := f.uc.GetByID(context.Background(), userOf(companyA), tplID)
	assert.ErrorIs(t, err, domain.ErrForbidden)

	out, err := f.uc.GetByID(context.Background(), userOf(companyA, loc1), tplID)
	require.NoError(t, err)
	assert.Equal(t, tplID, out.ID)
}

func TestTemplateDelete_OtroTenant_NotFound(t *testing.T) {
	f := newTemplateFixture(t)
	tplID := "bbbbbbbb-bbbb-4bbb-8bbb-000000000002"
	require.NoError(t, f.templates.Create(context.Background(), &entity.Template{
		ID: tplID, CompanyID: companyB, LocationID: loc2, SupplierID: supplier1, OrderDays: orderDays(),
	}))

	err := f.uc.Delete(context.Background(), adminOf(companyA), tplID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
