package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

const (
	companyA = "11111111-1111-1111-1111-111111111111"
	companyB = "22222222-2222-2222-2222-222222222222"
	loc1     = "33333333-3333-3333-3333-000000000001"
	loc2     = "33333333-3333-3333-3333-000000000002"
)

func adminOf(company string) access.Principal {
	return access.Principal{UserID: "44444444-4444-4444-4444-444444444444", CompanyID: company, Role: access.RoleAdmin}
}

func userOf(company string, locs ...string) access.Principal {
	return access.Principal{UserID: "55555555-5555-5555-5555-555555555555", CompanyID: company, Role: access.RoleUser, LocationIDs: locs}
}

func TestCategoryCreate_CompanyForzadaDesdeElToken(t *testing.T) {
	repo := newFakeCategoryRepo()
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.Create(context.Background(), adminOf(companyA), dto.CreateCategoryRequest{Name: "Lácteos"})
	require.NoError(t, err)

	assert.Equal(t, companyA, out.CompanyID, "la company sale del token, no del payload")
	stored, _ := repo.GetByID(context.Background(), out.ID)
	require.NotNil(t, stored)
	assert.Equal(t, companyA, stored.CompanyID)
}

// Un payload que pide crear en otro tenant se rechaza, no se reescribe en silencio.
func TestCategoryCreate_OtroTenantEnPayload_Forbidden(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(context.Background(), adminOf(companyA), dto.CreateCategoryRequest{
		CompanyID: companyB,
		Name:      "Lácteos",
	})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestCategoryCreate_SinNombre_Validacion(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.Create(context.Background(), adminOf(companyA), dto.CreateCategoryRequest{})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func seedCategory(repo *fakeCategoryRepo, id, company, name string) {
	_ = repo.Create(context.Background(), &entity.Category{ID: id, CompanyID: company, Name: name})
}

func TestCategoryGetByID_OtroTenant_Forbidden(t *testing.T) {
	repo := newFakeCategoryRepo()
	catB := "66666666-6666-6666-6666-666666666666"
	seedCategory(repo, catB, companyB, "Ajena")
	uc := usecase.NewCategoryUseCase(repo)

	_, err := uc.GetByID(context.Background(), adminOf(companyA), catB)
	assert.ErrorIs(t, err, domain.ErrForbidden,
		"un registro existente de otro tenant es Forbidden, no NotFound")
}

func TestCategoryGetByID_Inexistente_NotFound(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.GetByID(context.Background(), adminOf(companyA), "77777777-7777-7777-7777-777777777777")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCategoryGetByID_IDMalformado(t *testing.T) {
	uc := usecase.NewCategoryUseCase(newFakeCategoryRepo())

	_, err := uc.GetByID(context.Background(), adminOf(companyA), "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrMalformedID)
}

// El DELETE lleva el scope embebido: borrar un registro de otro tenant no
// matchea ninguna fila y responde NotFound.
func TestCategoryDelete_OtroTenant_NotFound(t *testing.T) {
	repo := newFakeCategoryRepo()
	catB := "66666666-6666-6666-6666-666666666666"
	seedCategory(repo, catB, companyB, "Ajena")
	uc := usecase.NewCategoryUseCase(repo)

	err := uc.Delete(context.Background(), adminOf(companyA), catB)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	stored, _ := repo.GetByID(context.Background(), catB)
	assert.NotNil(t, stored, "el registro ajeno debe seguir existiendo")
}

func TestCategoryList_SoloDelTenant(t *testing.T) {
	repo := newFakeCategoryRepo()
	seedCategory(repo, "66666666-6666-6666-6666-000000000001", companyA, "Propia")
	seedCategory(repo, "66666666-6666-6666-6666-000000000002", companyB, "Ajena")
	uc := usecase.NewCategoryUseCase(repo)

	out, err := uc.List(context.Background(), userOf(companyA))
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Equal(t, "Propia", out[0].Name)
}

func TestCategoryUpdate_ActualizaNombre(t *testing.T) {
	repo := newFakeCategoryRepo()
	catA := "66666666-6666-6666-6666-000000000001"
	seedCategory(repo, catA, companyA, "Viejo")
	uc := usecase.NewCategoryUseCase(repo)

	nuevo := "Nuevo"
	err := uc.Update(context.Background(), adminOf(companyA), catA, dto.UpdateCategoryRequest{Name: &nuevo})
	require.NoError(t, err)

	stored, _ := repo.GetByID(context.Background(), catA)
	assert.Equal(t, "Nuevo", stored.Name)
}
