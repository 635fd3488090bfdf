// github.com/kawanwagnner/API-Rest/handlers/conta_handler.go
package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/services"
)

type ContaHandler struct {
	service services.ContaService
	log     zerolog.Logger
}

func NewContaHandler(service services.ContaService, log zerolog.Logger) *ContaHandler {
	return &ContaHandler{service: service, log: log}
}

// Create handles POST /contas
func (h *ContaHandler) Create(c *gin.Context) {
	var req models.CreateContaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	conta, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicado) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Número da conta já está em uso"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao criar conta")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar criar a conta"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Conta criada com sucesso", "conta": conta})
}

// GetAll handles GET /contas
func (h *ContaHandler) GetAll(c *gin.Context) {
	contas, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Nenhuma conta encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar contas")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Todas as contas", "contas": contas})
}

// GetOne handles GET /contas/:id
func (h *ContaHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Conta não encontrada"})
		return
	}

	conta, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Conta não encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar conta")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Conta encontrada", "conta": conta})
}

// Update handles PUT /contas/:id
func (h *ContaHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Conta não encontrada"})
		return
	}

	var req models.UpdateContaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	conta, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNaoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"msg": "Conta não encontrada"})
		case errors.Is(err, models.ErrDuplicado):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "Número da conta já está em uso por outra conta"})
		default:
			h.log.Error().Err(err).Msg("erro ao atualizar conta")
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar atualizar a conta"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Conta atualizada com sucesso!", "conta": conta})
}

// Delete handles DELETE /contas/:id
func (h *ContaHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Conta não encontrada"})
		return
	}

	conta, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Conta não encontrada"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao deletar conta")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Conta deletada com sucesso!", "conta": conta})
}
