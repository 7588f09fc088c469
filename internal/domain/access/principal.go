// Package access contiene la política de autorización: el Principal resuelto
// por request y las reglas que deciden qué registros puede leer/escribir.
package access

// Role es la enumeración cerrada de roles. Cualquier otro valor falla la
// autorización en vez de pasar en silencio.
type Role string

const (
	RoleAdmin Role = "Admin"
	RoleUser  Role = "User"
)

// Valid reporta si el rol es uno de los conocidos.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleUser
}

// Principal es la identidad resuelta del llamador para el request actual:
// se construye una vez desde el token verificado y es inmutable.
type Principal struct {
	UserID      string
	CompanyID   string
	Role        Role
	LocationIDs []string
}

// HasLocation reporta si la location pertenece al conjunto asignado al usuario.
func (p Principal) HasLocation(locationID string) bool {
	for _, id := range p.LocationIDs {
		if id == locationID {
			return true
		}
	}
	return false
}

// Can es la puerta gruesa de roles: con lista vacía pasa cualquier principal
// autenticado con rol válido; si no, el rol debe estar en la lista.
func (p Principal) Can(required ...Role) bool {
	if !p.Role.Valid() {
		return false
	}
	if len(required) == 0 {
		return true
	}
	for _, r := range required {
		if p.Role == r {
			return true
		}
	}
	return false
}
