package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ordena-api/internal/application/auth"
	"github.com/jhoicas/ordena-api/internal/application/usecase"
	"github.com/jhoicas/ordena-api/internal/domain/access"
	"github.com/jhoicas/ordena-api/internal/domain/entity"
	apphttp "github.com/jhoicas/ordena-api/internal/interfaces/http"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes mínimos para el recorrido handler → use case
// ──────────────────────────────────────────────────────────────────────────────

type memCategoryRepo struct {
	items map[string]*entity.Category
}

func (m *memCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	m.items[c.ID] = c
	return nil
}

func (m *memCategoryRepo) GetByID(_ context.Context, id string) (*entity.Category, error) {
	return m.items[id], nil
}

func (m *memCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	m.items[c.ID] = c
	return nil
}

func (m *memCategoryRepo) List(_ context.Context, scope access.Scope) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range m.items {
		if scope.CompanyID == "" || c.CompanyID == scope.CompanyID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategoryRepo) Delete(_ context.Context, id string, scope access.Scope) (bool, error) {
	c, ok := m.items[id]
	if !ok || (scope.CompanyID != "" && c.CompanyID != scope.CompanyID) {
		return false, nil
	}
	delete(m.items, id)
	return true, nil
}

type memUserRepo struct {
	byEmail map[string]*entity.User
}

func (m *memUserRepo) Create(_ context.Context, u *entity.User) error { return nil }
func (m *memUserRepo) GetByID(_ context.Context, id string) (*entity.User, error) {
	return nil, nil
}
func (m *memUserRepo) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	return m.byEmail[email], nil
}
func (m *memUserRepo) Update(_ context.Context, u *entity.User) error { return nil }
func (m *memUserRepo) List(_ context.Context, _ access.Scope) ([]*entity.User, error) {
	return nil, nil
}
func (m *memUserRepo) Delete(_ context.Context, id string, _ access.Scope) (bool, error) {
	return false, nil
}

const otherCompanyID = "00000000-0000-0000-0000-000000000099"

func buildCategoryApp(t *testing.T) (*fiber.App, *memCategoryRepo) {
	t.Helper()
	repo := &memCategoryRepo{items: map[string]*entity.Category{}}
	handler := apphttp.NewCategoryHandler(usecase.NewCategoryUseCase(repo))

	app := fiber.New()
	g := app.Group("/api/categories", apphttp.AuthMiddleware(testJWTSecret))
	g.Get("/:id", handler.GetByID)
	g.Post("/", apphttp.RequireRole(access.RoleAdmin), handler.Create)
	g.Delete("/:id", apphttp.RequireRole(access.RoleAdmin), handler.Delete)
	return app, repo
}

func categoryRequest(t *testing.T, app *fiber.App, method, path, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	req.Header.Set(apphttp.HeaderAuthToken, token)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

// ──────────────────────────────────────────────────────────────────────────────
// Escenarios del contrato
// ──────────────────────────────────────────────────────────────────────────────

// El POST devuelve la entidad creada, no el acuse genérico: el cliente necesita
// el id nuevo y poder verificar que la company quedó tomada del token.
func TestCategoryCreate_EchoDeLaEntidadConCompanyDelToken(t *testing.T) {
	app, repo := buildCategoryApp(t)

	req := httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Electronics","company_id":"`+otherCompanyID+`"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(apphttp.HeaderAuthToken, tokenForRole(t, "Admin"))
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode,
		"un company_id ajeno en el payload se rechaza")

	req = httptest.NewRequest(http.MethodPost, "/api/categories",
		strings.NewReader(`{"name":"Electronics"}`))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	req.Header.Set(apphttp.HeaderAuthToken, tokenForRole(t, "Admin"))
	resp, err = app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out struct {
		ID        string `json:"id"`
		CompanyID string `json:"company_id"`
		Name      string `json:"name"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.NotEmpty(t, out.ID, "el cliente recibe el id del registro nuevo")
	assert.Equal(t, testCompanyID, out.CompanyID, "la company se toma del token")
	assert.Equal(t, "Electronics", out.Name)

	stored := repo.items[out.ID]
	require.NotNil(t, stored, "el id devuelto corresponde al registro persistido")
	assert.Equal(t, testCompanyID, stored.CompanyID)
}

// Un id que no es UUID responde 418 con su mensaje literal.
func TestCategoryGetByID_IDMalformado_418Teapot(t *testing.T) {
	app, _ := buildCategoryApp(t)
	resp := categoryRequest(t, app, http.MethodGet, "/api/categories/not-a-uuid", tokenForRole(t, "Admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusTeapot, resp.StatusCode)
	assert.Equal(t, "I'm a teapot. Don't ask me to brew coffee.", bodyMessage(t, resp))
}

func TestCategoryGetByID_Inexistente_404(t *testing.T) {
	app, _ := buildCategoryApp(t)
	resp := categoryRequest(t, app, http.MethodGet,
		"/api/categories/aaaaaaaa-aaaa-4aaa-8aaa-000000000001", tokenForRole(t, "Admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "The category with the given ID was not found.", bodyMessage(t, resp))
}

// Leer un registro ajeno revela su existencia con 401; borrarlo no: el DELETE
// lleva el scope en la consulta y el registro ajeno simplemente "no existe".
func TestCategory_RegistroAjeno_GetEs401DeleteEs404(t *testing.T) {
	app, repo := buildCategoryApp(t)
	id := "aaaaaaaa-aaaa-4aaa-8aaa-000000000002"
	repo.items[id] = &entity.Category{ID: id, CompanyID: otherCompanyID, Name: "Ajena"}

	get := categoryRequest(t, app, http.MethodGet, "/api/categories/"+id, tokenForRole(t, "Admin"))
	defer get.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, get.StatusCode)
	assert.Equal(t, "You don't have permissions to access this resource.", bodyMessage(t, get))

	del := categoryRequest(t, app, http.MethodDelete, "/api/categories/"+id, tokenForRole(t, "Admin"))
	defer del.Body.Close()
	assert.Equal(t, http.StatusNotFound, del.StatusCode)
	_, ok := repo.items[id]
	assert.True(t, ok, "el registro ajeno no debe borrarse")
}

func TestCategoryDelete_Propio_200ConAcuse(t *testing.T) {
	app, repo := buildCategoryApp(t)
	id := "aaaaaaaa-aaaa-4aaa-8aaa-000000000003"
	repo.items[id] = &entity.Category{ID: id, CompanyID: testCompanyID, Name: "Propia"}

	resp := categoryRequest(t, app, http.MethodDelete, "/api/categories/"+id, tokenForRole(t, "Admin"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "The operation was successful.", bodyMessage(t, resp))
	assert.Empty(t, repo.items)
}

func TestCategoryDelete_RolUser_401Permisos(t *testing.T) {
	app, _ := buildCategoryApp(t)
	resp := categoryRequest(t, app, http.MethodDelete,
		"/api/categories/aaaaaaaa-aaaa-4aaa-8aaa-000000000003", tokenForRole(t, "User"))
	defer resp.Body.Close()

	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "You don't have permissions to access this resource.", bodyMessage(t, resp))
}

// ──────────────────────────────────────────────────────────────────────────────
// Login
// ──────────────────────────────────────────────────────────────────────────────

func buildAuthApp(t *testing.T) *fiber.App {
	t.Helper()
	hash, err := auth.HashPassword("hunter2")
	require.NoError(t, err)
	repo := &memUserRepo{byEmail: map[string]*entity.User{
		"ana@example.com": {
			ID:           testUserID,
			CompanyID:    testCompanyID,
			Email:        "ana@example.com",
			PasswordHash: hash,
			Role:         "Admin",
		},
	}}
	uc := auth.NewAuthUseCase(repo, auth.JWTConfig{Secret: testJWTSecret, ExpMinutes: 60, Issuer: testIssuer})
	app := fiber.New()
	app.Post("/api/auth", apphttp.NewAuthHandler(uc).Login)
	return app
}

func postLogin(t *testing.T, app *fiber.App, payload string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/api/auth", strings.NewReader(payload))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestLogin_Correcto_DevuelveToken(t *testing.T) {
	app := buildAuthApp(t)
	resp := postLogin(t, app, `{"email":"ana@example.com","password":"hunter2"}`)
	defer resp.Body.Close()

	require.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body["token"])
	assert.NotEmpty(t, resp.Header.Get(apphttp.HeaderAuthToken), "el token también viaja en el header")
}

// Email inexistente y password incorrecto responden idéntico: 400 con el
// mensaje genérico, sin revelar cuál falló.
func TestLogin_CredencialesIncorrectas_400Generico(t *testing.T) {
	app := buildAuthApp(t)

	for _, payload := range []string{
		`{"email":"nadie@example.com","password":"hunter2"}`,
		`{"email":"ana@example.com","password":"incorrecto"}`,
	} {
		resp := postLogin(t, app, payload)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "Invalid email or password", bodyMessage(t, resp))
		resp.Body.Close()
	}
}
