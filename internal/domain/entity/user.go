package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin    = "admin"
	RoleTesorero = "tesorero"
)

// User representa un usuario del sistema.
type User struct {
	ID           string
	Username     string
	PasswordHash string // bcrypt hash, nunca plano en dominio después de persistir
	Name         string
	Role         string // admin, tesorero
	Status       string // active, inactive
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
