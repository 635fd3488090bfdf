package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/services"
)

type AdministradorHandler struct {
	service services.AdministradorService
	log     zerolog.Logger
}

func NewAdministradorHandler(service services.AdministradorService, log zerolog.Logger) *AdministradorHandler {
	return &AdministradorHandler{service: service, log: log}
}

// Create handles POST /admin
func (h *AdministradorHandler) Create(c *gin.Context) {
	var req models.CreateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	admin, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, models.ErrDuplicado) {
			c.JSON(http.StatusBadRequest, gin.H{"msg": "E-mail já está em uso"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao criar administrador")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar criar o administrador"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"msg": "Administrador criado com sucesso", "admin": admin})
}

// Login handles POST /admin/login
func (h *AdministradorHandler) Login(c *gin.Context) {
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
		h.log.Error().Err(err).Msg("erro no login do administrador")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro interno no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Login realizado", "token": token})
}

// GetAll handles GET /admin
func (h *AdministradorHandler) GetAll(c *gin.Context) {
	admins, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Nenhum administrador encontrado"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar administradores")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Todos os administradores", "admins": admins})
}

// GetOne handles GET /admin/:id
func (h *AdministradorHandler) GetOne(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Administrador não encontrado"})
		return
	}

	admin, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Administrador não encontrado"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao buscar administrador")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Administrador encontrado", "admin": admin})
}

// Update handles PUT /admin/:id
func (h *AdministradorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Administrador não encontrado"})
		return
	}

	var req models.UpdateAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"msg": "Dados inválidos: " + err.Error()})
		return
	}

	admin, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, models.ErrNaoEncontrado):
			c.JSON(http.StatusNotFound, gin.H{"msg": "Administrador não encontrado"})
		case errors.Is(err, models.ErrDuplicado):
			c.JSON(http.StatusBadRequest, gin.H{"msg": "E-mail já está em uso"})
		default:
			h.log.Error().Err(err).Msg("erro ao atualizar administrador")
			c.JSON(http.StatusInternalServerError, gin.H{"msg": "Erro ao tentar atualizar o administrador"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Administrador atualizado com sucesso!", "admin": admin})
}

// Delete handles DELETE /admin/:id
func (h *AdministradorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"msg": "Administrador não encontrado"})
		return
	}

	admin, err := h.service.Delete(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			c.JSON(http.StatusNotFound, gin.H{"msg": "Administrador não encontrado"})
			return
		}
		h.log.Error().Err(err).Msg("erro ao deletar administrador")
		c.JSON(http.StatusInternalServerError, gin.H{"msg": "Ocorreu um erro no servidor"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"msg": "Administrador deletado com sucesso!", "admin": admin})
}
