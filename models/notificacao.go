package models

import "time"

// Notificacao é fracamente acoplada ao usuário: usuarioId não carrega
// constraint e a associação é carregada em melhor esforço.
type Notificacao struct {
	ID        int            `json:"id"`
	Titulo    string         `json:"titulo"`
	Mensagem  string         `json:"mensagem"`
	Tipo      string         `json:"tipo"`
	UsuarioID int            `json:"usuarioId"`
	Usuario   *ClienteResumo `json:"usuario,omitempty"`
	CreatedAt time.Time      `json:"createdAt"`
	UpdatedAt time.Time      `json:"updatedAt"`
}

type CreateNotificacaoRequest struct {
	Titulo    string `json:"titulo" binding:"required"`
	Mensagem  string `json:"mensagem" binding:"required"`
	Tipo      string `json:"tipo" binding:"required"`
	UsuarioID int    `json:"usuarioId" binding:"required"`
}

type UpdateNotificacaoRequest struct {
	Titulo    *string `json:"titulo"`
	Mensagem  *string `json:"mensagem"`
	Tipo      *string `json:"tipo"`
	UsuarioID *int    `json:"usuarioId"`
}
