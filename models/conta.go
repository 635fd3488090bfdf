// github.com/kawanwagnner/API-Rest/models/conta.go
package models

import "time"

type Conta struct {
	ID        int            `json:"id"`
	Numero    string         `json:"numero"`
	Tipo      string         `json:"tipo"`
	Saldo     float64        `json:"saldo"`
	ClienteID int            `json:"clienteId"`
	Cliente   *ClienteResumo `json:"cliente,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

// ContaResumo é a projeção embutida nas transações.
type ContaResumo struct {
	ID     int    `json:"id"`
	Numero string `json:"numero"`
	Tipo   string `json:"tipo"`
}

// Saldo não leva "required": zero e negativo são valores válidos na criação.
type CreateContaRequest struct {
	Numero    string  `json:"numero" binding:"required"`
	Tipo      string  `json:"tipo" binding:"required"`
	Saldo     float64 `json:"saldo"`
	ClienteID int     `json:"clienteId" binding:"required"`
}

type UpdateContaRequest struct {
	Numero    *string  `json:"numero"`
	Tipo      *string  `json:"tipo"`
	Saldo     *float64 `json:"saldo"`
	ClienteID *int     `json:"clienteId"`
}
