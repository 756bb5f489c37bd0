package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "admin"     // administra items, usuarios y configuración
	RoleBodeguero = "bodeguero" // opera bodega: consulta stock y reposición
	RoleAnalista  = "analista"  // solo lectura de reportes de margen
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, bodeguero, analista
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
