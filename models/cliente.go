// github.com/kawanwagnner/API-Rest/models/cliente.go
package models

import "time"

type Cliente struct {
	ID        int       `json:"id"`
	Nome      string    `json:"nome"`
	Email     string    `json:"email"`
	Senha     string    `json:"-"` // nunca serializada
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ClienteResumo é a projeção embutida nas associações (conta.cliente,
// notificacao.usuario).
type ClienteResumo struct {
	ID    int    `json:"id"`
	Nome  string `json:"nome"`
	Email string `json:"email"`
}

type CreateClienteRequest struct {
	Nome  string `json:"nome" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required,min=6"`
}

// UpdateClienteRequest usa ponteiros para distinguir campo ausente de campo
// com valor zero.
type UpdateClienteRequest struct {
	Nome  *string `json:"nome"`
	Email *string `json:"email" binding:"omitempty,email"`
	Senha *string `json:"senha" binding:"omitempty,min=6"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Senha string `json:"senha" binding:"required"`
}
