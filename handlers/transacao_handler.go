package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/services"
)

type TransacaoHandler struct {
	service services.TransacaoService
	log     zerolog.Logger
}

func NewTransacaoHandler(service services.TransacaoService, log zerolog.Logger) *TransacaoHandler {
	return &TransacaoHandler{service: service, log: log}
}

// Create handles POST /transacoes
func (h *TransacaoHandler) Create(c *gin.Context) {
	var req models.CreateTransacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	transacao, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrContaReferenciada) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Conta de origem ou destino não encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao criar transação")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar criar a transação"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Transação criada com sucesso", "transacao": transacao})
}

// GetAll handles GET /transacoes
func (h *TransacaoHandler) GetAll(c *gin.Context) {
	transacoes, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Nenhuma transação encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar transações")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Todas as transações", "transacoes": transacoes})
}

// GetOne handles GET /transacoes/:id
func (h *TransacaoHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Transação não encontrada"})
		return
	}

	transacao, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Transação não encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar transação")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Transação encontrada", "transacao": transacao})
}

// Update handles PUT /transacoes/:id
func (h *TransacaoHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Transação não encontrada"})
		return
	}

	var req models.UpdateTransacaoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	transacao, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNaoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"msg": "Transação não encontrada"})
		case errors.Is(err, models.ErrContaReferenciada):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Conta de origem ou destino não encontrada"})
		default:
			h.log.Error().Err(err).Msg("erro ao atualizar transação")
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar atualizar a transação"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Transação atualizada com sucesso!", "transacao": transacao})
}

// Delete handles DELETE /transacoes/:id
func (h *TransacaoHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Transação não encontrada"})
		return
	}

	transacao, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Transação não encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao deletar transação")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Transação deletada com sucesso!", "transacao": transacao})
}
