package models

import "time"

// Administrador tem o mesmo formato de Cliente, mais idade. Namespace de
// e-mail separado: um e-mail pode existir em clientes e administradores.
type Administrador struct {
	ID        int       `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Senha     string    `json:"-"`
	Idade     int       `json:"idade"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateAdminRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6"`
	Idade int    `json:"idade" binding:"required,gt=0"`
}

type UpdateAdminRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email" binding:"omitempty,email"`
	Senha *string `json:"senha" binding:"omitempty,min=6"`
}
