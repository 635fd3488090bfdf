// github.com/kawanwagnner/API-Rest/handlers/cliente_handler.go
package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/services"
)

type ClienteHandler struct {
	service services.ClienteService
	log     zerolog.Logger
}

func NewClienteHandler(service services.ClienteService, log zerolog.Logger) *ClienteHandler {
	return &ClienteHandler{service: service, log: log}
}

// parseID lê o :id da rota; qualquer coisa que não seja inteiro vira 404,
// já que nenhum registro tem esse identificador.
func parseID(c *gin.Context) (int, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, false
	}
	return id, true
}

// Create handles POST /cliente
func (h *ClienteHandler) Create(c *gin.Context) {
	var req models.CreateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	cliente, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicado) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "E-mail já está em uso"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao criar cliente")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar criar o cliente"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Cliente criado com sucesso", "cliente": cliente})
}

// Login handles POST /cliente/login
func (h *ClienteHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	token, err := h.service.Login(c.Request.Context(), req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, models.ErrCredenciaisInvalidas) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "E-mail ou senha incorretos!"})
			return
		}
		h.log.Error().Err(err).Msg("erro no login do cliente")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro interno no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Login realizado", "token": token})
}

// GetAll handles GET /cliente
func (h *ClienteHandler) GetAll(c *gin.Context) {
	clientes, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Nenhum cliente encontrado"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar clientes")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Todos os clientes", "clientes": clientes})
}

// GetOne handles GET /cliente/:id
func (h *ClienteHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente não encontrado"})
		return
	}

	cliente, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente não encontrado"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar cliente")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Cliente encontrado", "cliente": cliente})
}

// Update handles PUT /cliente/:id
func (h *ClienteHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente não encontrado"})
		return
	}

	var req models.UpdateClienteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	cliente, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNaoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente não encontrado"})
		case errors.Is(err, models.ErrDuplicado):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "E-mail já está em uso por outro cliente"})
		default:
			h.log.Error().Err(err).Msg("erro ao atualizar cliente")
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar atualizar o cliente"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Cliente atualizado com sucesso!", "cliente": cliente})
}

// Delete handles DELETE /cliente/:id
func (h *ClienteHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente não encontrado"})
		return
	}

	cliente, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Cliente não encontrado"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao deletar cliente")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Cliente deletado com sucesso!", "cliente": cliente})
}
