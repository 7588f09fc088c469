package entity

import "time"

// User representa un usuario del sistema (pertenece a una Company).
// LocationIDs solo es significativo para el rol User: restringe qué locations
// (y sus pedidos/plantillas) puede ver.
type User struct {
	ID           string
	CompanyID    string
	Name         string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Role         string // "Admin" | "User", ver access.Role
	LocationIDs  []string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
