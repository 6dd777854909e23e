package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
	RoleStaff      = "staff"
	RoleSupport    = "support"
	RoleViewer     = "viewer"
)

// User representa un usuario del sistema (pertenece a una Company).
type User struct {
	ID           string
	CompanyID    string
	Email        string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, super_admin, staff, support, viewer
	Status       string // active, inactive, suspended
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
