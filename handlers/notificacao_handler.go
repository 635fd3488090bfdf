package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/services"
)

type NotificacaoHandler struct {
	service services.NotificacaoService
	log     zerolog.Logger
}

func NewNotificacaoHandler(service services.NotificacaoService, log zerolog.Logger) *NotificacaoHandler {
	return &NotificacaoHandler{service: service, log: log}
}

// Create handles POST /notificacoes
func (h *NotificacaoHandler) Create(c *gin.Context) {
	var req models.CreateNotificacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	notificacao, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		h.log.Error().Err(err).Msg("erro ao criar notificação")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar criar a notificação"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Notificação criada com sucesso", "notificacao": notificacao})
}

// GetAll handles GET /notificacoes
func (h *NotificacaoHandler) GetAll(c *gin.Context) {
	notificacoes, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Nenhuma notificação encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar notificações")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Todas as notificações", "notificacoes": notificacoes})
}

// GetOne handles GET /notificacoes/:id
func (h *NotificacaoHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Notificação não encontrada"})
		return
	}

	notificacao, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Notificação não encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar notificação")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Notificação encontrada", "notificacao": notificacao})
}

// Update handles PUT /notificacoes/:id
func (h *NotificacaoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Notificação não encontrada"})
		return
	}

	var req models.UpdateNotificacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	notificacao, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Notificação não encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao atualizar notificação")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar atualizar a notificação"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Notificação atualizada com sucesso!", "notificacao": notificacao})
}

// Delete handles DELETE /notificacoes/:id
func (h *NotificacaoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Notificação não encontrada"})
		return
	}

	notificacao, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Notificação não encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao deletar notificação")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Notificação deletada com sucesso!", "notificacao": notificacao})
}
