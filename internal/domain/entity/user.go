package entity

import "time"

// Roles válidos para User.
const (
	RoleAdmin     = "ADMIN"
	RoleFinance   = "FINANCE"
	RoleStock     = "STOCK"
	RoleSeller    = "SELLER"
	RolePurchases = "PURCHASES"
	RoleHR        = "HR"
	RoleAuditor   = "AUDITOR"
)

// ValidRole indica si el rol pertenece al conjunto conocido.
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleFinance, RoleStock, RoleSeller, RolePurchases, RoleHR, RoleAuditor:
		return true
	}
	return false
}

// User usuario del sistema. Entra con email + chave de acesso.
type User struct {
	ID            string
	Name          string
	Email         string
	Role          string
	Status        string    // active, inactive
	AccessKeyHash string    // bcrypt de la chave de acesso
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
