package access_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/ordena-api/internal/domain/access"
)

func adminPrincipal() access.Principal {
	return access.Principal{
		UserID:    "u-admin",
		CompanyID: "company-a",
		Role:      access.RoleAdmin,
	}
}

func userPrincipal(locs ...string) access.Principal {
	return access.Principal{
		UserID:      "u-user",
		CompanyID:   "company-a",
		Role:        access.RoleUser,
		LocationIDs: locs,
	}
}

// ──────────────────────────────────────────────────────────────────────────────
// ScopeFor
// ──────────────────────────────────────────────────────────────────────────────

// Admin ve toda su empresa, sin restricción por location.
func TestScopeFor_AdminNoRestringePorLocation(t *testing.T) {
	s := access.ScopeFor(adminPrincipal(), access.KindOrder)
	assert.Equal(t, "company-a", s.CompanyID)
	assert.Nil(t, s.LocationIDs)
}

// User en entidades ligadas a location recibe el filtro de sus locations.
func TestScopeFor_UserRestringeOrdersASusLocations(t *testing.T) {
	s := access.ScopeFor(userPrincipal("loc-1", "loc-2"), access.KindOrder)
	assert.Equal(t, "company-a", s.CompanyID)
	assert.Equal(t, []string{"loc-1", "loc-2"}, s.LocationIDs)
}

// User sin locations asignadas recibe conjunto vacío (lista vacía, no todo).
func TestScopeFor_UserSinLocations_ConjuntoVacio(t *testing.T) {
	s := access.ScopeFor(userPrincipal(), access.KindTemplate)
	assert.NotNil(t, s.LocationIDs)
	assert.Empty(t, s.LocationIDs)
}

// Las entidades de solo-tenant no restringen por location ni para User.
func TestScopeFor_CategoriaSoloFiltraPorCompany(t *testing.T) {
	s := access.ScopeFor(userPrincipal("loc-1"), access.KindCategory)
	assert.Equal(t, "company-a", s.CompanyID)
	assert.Nil(t, s.LocationIDs)
}

// Supplier y Product son globales: scope sin restricción alguna.
func TestScopeFor_SupplierYProductSonGlobales(t *testing.T) {
	assert.True(t, access.ScopeFor(userPrincipal("loc-1"), access.KindSupplier).Global())
	assert.True(t, access.ScopeFor(adminPrincipal(), access.KindProduct).Global())
}

// ──────────────────────────────────────────────────────────────────────────────
// Allows
// ──────────────────────────────────────────────────────────────────────────────

func TestAllows_OtroTenantSiempreDenegado(t *testing.T) {
	assert.False(t, access.Allows(adminPrincipal(), access.KindCategory, "company-b", ""))
	assert.False(t, access.Allows(userPrincipal("loc-1"), access.KindOrder, "company-b", "loc-1"))
}

func TestAllows_AdminAccedeTodaSuEmpresa(t *testing.T) {
	assert.True(t, access.Allows(adminPrincipal(), access.KindOrder, "company-a", "cualquier-loc"))
	assert.True(t, access.Allows(adminPrincipal(), access.KindLocation, "company-a", "cualquier-loc"))
}

func TestAllows_UserSoloSusLocations(t *testing.T) {
	p := userPrincipal("loc-1")
	assert.True(t, access.Allows(p, access.KindOrder, "company-a", "loc-1"))
	assert.False(t, access.Allows(p, access.KindOrder, "company-a", "loc-2"),
		"order de una location no asignada debe denegarse aunque sea de la misma empresa")
}

func TestAllows_UserCategoriasDeSuEmpresa(t *testing.T) {
	// Category no está ligada a location: basta la empresa.
	assert.True(t, access.Allows(userPrincipal(), access.KindCategory, "company-a", ""))
}

func TestAllows_GlobalesParaCualquierAutenticado(t *testing.T) {
	assert.True(t, access.Allows(userPrincipal(), access.KindSupplier, "", ""))
	assert.True(t, access.Allows(userPrincipal(), access.KindProduct, "", ""))
}

// Un rol desconocido nunca pasa, ni siquiera en entidades globales.
func TestAllows_RolDesconocidoDenegado(t *testing.T) {
	p := access.Principal{UserID: "u", CompanyID: "company-a", Role: access.Role("superadmin")}
	assert.False(t, access.Allows(p, access.KindProduct, "", ""))
	assert.False(t, p.Can())
}

func TestCan_PuertaDeRoles(t *testing.T) {
	assert.True(t, adminPrincipal().Can(access.RoleAdmin))
	assert.False(t, userPrincipal().Can(access.RoleAdmin))
	assert.True(t, userPrincipal().Can(), "lista vacía admite cualquier rol válido")
	assert.True(t, userPrincipal().Can(access.RoleAdmin, access.RoleUser))
}
