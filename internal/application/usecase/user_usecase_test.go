package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordena-api/internal/application/auth"
	"github.com/jhoicas/ordena-api/internal/application/dto"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
	"github.com/jhoicas/ordena-api/internal/domain"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
)

type userFixture struct {
	users     *fakeUserRepo
	locations *fakeLocationRepo
	uc        *usecase.UserUseCase
}

func newUserFixture(t *testing.T) *userFixture {
	t.Helper()
	users := newFakeUserRepo()
	locations := newFakeLocationRepo()
	ctx := context.Background()
	require.NoError(t, locations.Create(ctx, &entity.Location{ID: loc1, CompanyID: companyA, Name: "Sede 1"}))
	require.NoError(t, locations.Create(ctx, &entity.Location{ID: loc2, CompanyID: companyB, Name: "Ajena"}))
	return &userFixture{users: users, locations: locations, uc: usecase.NewUserUseCase(users, locations)}
}

func TestUserCreate_HasheaElPassword(t *testing.T) {
	f := newUserFixture(t)

	out, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateUserRequest{
		Name:        "Ana",
		Email:       "ana@example.com",
		Password:    "hunter2",
		Role:        "User",
		LocationIDs: []string{loc1},
	})
	require.NoError(t, err)

	stored, _ := f.users.GetByID(context.Background(), out.ID)
	require.NotNil(t, stored)
	assert.True(t, strings.HasPrefix(stored.PasswordHash, "$2"),
		"se persiste el hash bcrypt, nunca el password plano")
	assert.NotContains(t, stored.PasswordHash, "hunter2")
	assert.True(t, auth.VerifyPassword("hunter2", stored.PasswordHash))
	assert.Equal(t, companyA, stored.CompanyID)
}

func TestUserCreate_RolDesconocido_Validacion(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateUserRequest{
		Name: "Ana", Email: "ana@example.com", Password: "x", Role: "superadmin",
	})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserCreate_LocationDeOtroTenant_ReferenciaInvalida(t *testing.T) {
	f := newUserFixture(t)

	_, err := f.uc.Create(context.Background(), adminOf(companyA), dto.CreateUserRequest{
		Name: "Ana", Email: "ana@example.com", Password: "x", Role: "User",
		LocationIDs: []string{loc2},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func (f *userFixture) seedUser(t *testing.T, id, company string) *entity.User {
	t.Helper()
	u := &entity.User{ID: id, CompanyID: company, Name: "Ana", Email: "ana@example.com", Role: "User"}
	require.NoError(t, auth.PrepareWrite(u, "original"))
	require.NoError(t, f.users.Create(context.Background(), u))
	return u
}

// Update sin password no toca el hash; con password lo reemplaza una vez.
func TestUserUpdate_RehashSoloConCredencialNueva(t *testing.T) {
	f := newUserFixture(t)
	id := "cccccccc-cccc-4ccc-8ccc-000000000001"
	f.seedUser(t, id, companyA)
	antes, _ := f.users.GetByID(context.Background(), id)

	nombre := "Ana María"
	require.NoError(t, f.uc.Update(context.Background(), adminOf(companyA), id, dto.UpdateUserRequest{Name: &nombre}))
	despues, _ := f.users.GetByID(context.Background(), id)
	assert.Equal(t, antes.PasswordHash, despues.PasswordHash, "sin credencial nueva el hash no cambia")

	nuevo := "nuevo-password"
	require.NoError(t, f.uc.Update(context.Background(), adminOf(companyA), id, dto.UpdateUserRequest{Password: &nuevo}))
	final, _ := f.users.GetByID(context.Background(), id)
	assert.NotEqual(t, despues.PasswordHash, final.PasswordHash)
	assert.True(t, auth.VerifyPassword("nuevo-password", final.PasswordHash))
}

func TestUserGetByID_OtroTenant_Forbidden(t *testing.T) {
	f := newUserFixture(t)
	id := "cccccccc-cccc-4ccc-8ccc-000000000002"
	f.seedUser(t, id, companyB)

	_, err := f.uc.GetByID(context.Background(), adminOf(companyA), id)
	assert.ErrorIs(t, err, domain.ErrForbidden)
}

func TestUserMe_DevuelveElAutenticado(t *testing.T) {
	f := newUserFixture(t)
	p := adminOf(companyA)
	f.seedUser(t, p.UserID, companyA)

	out, err := f.uc.Me(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, p.UserID, out.ID)
}

func TestUserList_NuncaExponePassword(t *testing.T) {
	f := newUserFixture(t)
	f.seedUser(t, "cccccccc-cccc-4ccc-8ccc-000000000001", companyA)

	out, err := f.uc.List(context.Background(), adminOf(companyA))
	require.NoError(t, err)
	require.Len(t, out, 1)
	// El DTO de salida ni siquiera tiene campo de password; validamos el scope.
	assert.Equal(t, companyA, out[0].CompanyID)
}
