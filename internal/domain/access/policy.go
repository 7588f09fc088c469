package access

// Kind identifica el tipo de entidad sobre el que se decide acceso.
type Kind int

const (
	KindCompany Kind = iota
	KindLocation
	KindCategory
	KindSubcategory
	KindSupplier
	KindProduct
	KindOrder
	KindTemplate
	KindUser
)

// Scope es el filtro de alcance que los listados intersectan con su consulta.
// Interpretación por entidad:
//   - CompanyID vacío: sin restricción de tenant (Supplier/Product son globales).
//   - LocationIDs nil: sin restricción por location.
//   - Para Order/Template, LocationIDs restringe location_id; para Location
//     restringe el propio id del registro; para Company, CompanyID restringe
//     el propio id.
type Scope struct {
	CompanyID   string
	LocationIDs []string
}

// Global reporta si el scope no impone restricción alguna.
func (s Scope) Global() bool {
	return s.CompanyID == "" && s.LocationIDs == nil
}

// locationBound indica las entidades cuyo acceso se restringe por location
// para el rol User.
func locationBound(k Kind) bool {
	return k == KindOrder || k == KindTemplate || k == KindLocation
}

// tenantScoped indica las entidades con campo de pertenencia a una Company.
// Supplier y Product quedan fuera: visibilidad global.
func tenantScoped(k Kind) bool {
	return k != KindSupplier && k != KindProduct
}

// ScopeFor calcula el filtro de alcance de un read-all para el principal.
func ScopeFor(p Principal, k Kind) Scope {
	if !tenantScoped(k) {
		return Scope{}
	}
	s := Scope{CompanyID: p.CompanyID}
	if p.Role == RoleUser && locationBound(k) {
		ids := p.LocationIDs
		if ids == nil {
			ids = []string{}
		}
		s.LocationIDs = ids
	}
	return s
}

// Allows decide si el principal puede operar sobre un registro concreto, dado
// el company y (si aplica) la location del registro. Para KindCompany se pasa
// el propio id del registro como recordCompanyID; para KindLocation, el propio
// id como recordLocationID.
func Allows(p Principal, k Kind, recordCompanyID, recordLocationID string) bool {
	if !p.Role.Valid() {
		return false
	}
	if !tenantScoped(k) {
		return true
	}
	if recordCompanyID != p.CompanyID {
		return false
	}
	if p.Role == RoleUser && locationBound(k) {
		return p.HasLocation(recordLocationID)
	}
	return true
}
