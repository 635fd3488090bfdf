package models

import "time"

// Transacao é um registro plano da intenção de transferência entre duas
// contas. Não debita nem credita saldo.
type Transacao struct {
	ID             int          `json:"id"`
	Tipo           string       `json:"tipo"`
	Valor          float64      `json:"valor"`
	ContaOrigemID  int          `json:"contaOrigemId"`
	ContaDestinoID int          `json:"contaDestinoId"`
	Descricao      string       `json:"descricao"`
	ContaOrigem    *ContaResumo `json:"contaOrigem,omitempty"`
	ContaDestino   *ContaResumo `json:"contaDestino,omitempty"`
	CreatedAt      time.Time    `json:"createdAt"`
	UpdatedAt      time.Time    `json:"updatedAt"`
}

type CreateTransacaoRequest struct {
	Tipo           string  `json:"tipo" binding:"required"`
	Valor          float64 `json:"valor"`
	ContaOrigemID  int     `json:"contaOrigemId" binding:"required"`
	ContaDestinoID int     `json:"contaDestinoId" binding:"required"`
	Descricao      string  `json:"descricao"`
}

type UpdateTransacaoRequest struct {
	Tipo           *string  `json:"tipo"`
	Valor          *float64 `json:"valor"`
	ContaOrigemID  *int     `json:"contaOrigemId"`
	ContaDestinoID *int     `json:"contaDestinoId"`
	Descricao      *string  `json:"descricao"`
}
