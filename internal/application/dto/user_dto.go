package dto

import "time"

// CreateUserRequest alta de usuario del sistema. La chave de acesso se hashea en el use case.
type CreateUserRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Role      string `json:"role" validate:"required,oneof=ADMIN FINANCE STOCK SELLER PURCHASES HR AUDITOR"`
	AccessKey string `json:"access_key" validate:"required,min=6"`
}

// UpdateUserRequest edición de usuario; los campos omitidos no cambian.
type UpdateUserRequest struct {
	Name      *string `json:"name" validate:"omitempty,min=1,max=200"`
	Email     *string `json:"email" validate:"omitempty,email"`
	Role      *string `json:"role" validate:"omitempty,oneof=ADMIN FINANCE STOCK SELLER PURCHASES HR AUDITOR"`
	AccessKey *string `json:"access_key" validate:"omitempty,min=6"`
}

// UpdateUserStatusRequest activar/desactivar un usuario.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=active inactive"`
}

// UserResponse salida de un usuario (sin chave).
type UserResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

// LoginRequest entrada de login con email y chave de acesso.
type LoginRequest struct {
	Email     string `json:"email" validate:"required,email"`
	AccessKey string `json:"access_key" validate:"required"`
}

// LoginResponse token JWT + usuario.
type LoginResponse struct {
	Token string       `json:"token"`
	User  UserResponse `json:"user"`
}
