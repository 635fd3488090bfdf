// github.com/kawanwagnner/API-Rest/routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/kawanwagnner/API-Rest/auth"
	"github.com/kawanwagnner/API-Rest/handlers"
	"github.com/kawanwagnner/API-Rest/middleware"
)

// Handlers agrupa os handlers construídos em main para o registro das rotas.
type Handlers struct {
	Cliente     *handlers.ClienteHandler
	Admin       *handlers.AdministradorHandler
	Conta       *handlers.ContaHandler
	Notificacao *handlers.NotificacaoHandler
	Transacao   *handlers.TransacaoHandler
}

// SetupRoutes registra todas as rotas da API. Cadastro e login de cliente e
// administrador são públicos; todo o resto exige bearer token.
func SetupRoutes(router *gin.Engine, h *Handlers, tokens *auth.TokenService) {
	autenticado := middleware.Authenticate(tokens)

	// Sondas e métricas
	router.GET("/okay", handlers.Okay)
	router.GET("/metrics", gin.WrapH(middleware.MetricsHandler()))

	cliente := router.Group("/cliente")
	{
		cliente.POST("/", h.Cliente.Create)
		cliente.POST("/login", h.Cliente.Login)

		cliente.GET("/", autenticado, h.Cliente.GetAll)
		cliente.GET("/:id", autenticado, h.Cliente.GetOne)
		cliente.PUT("/:id", autenticado, h.Cliente.Update)
		cliente.DELETE("/:id", autenticado, h.Cliente.Delete)
	}

	admin := router.Group("/admin")
	{
		admin.POST("/", h.Admin.Create)
		admin.POST("/login", h.Admin.Login)

		admin.GET("/", autenticado, h.Admin.GetAll)
		admin.GET("/:id", autenticado, h.Admin.GetOne)
		admin.PUT("/:id", autenticado, h.Admin.Update)
		admin.DELETE("/:id", autenticado, h.Admin.Delete)
	}

	contas := router.Group("/contas", autenticado)
	{
		contas.POST("/", h.Conta.Create)
		contas.GET("/", h.Conta.GetAll)
		contas.GET("/:id", h.Conta.GetOne)
		contas.PUT("/:id", h.Conta.Update)
		contas.DELETE("/:id", h.Conta.Delete)
	}

	notificacoes := router.Group("/notificacoes", autenticado)
	{
		notificacoes.POST("/", h.Notificacao.Create)
		notificacoes.GET("/", h.Notificacao.GetAll)
		notificacoes.GET("/:id", h.Notificacao.GetOne)
		notificacoes.PUT("/:id", h.Notificacao.Update)
		notificacoes.DELETE("/:id", h.Notificacao.Delete)
	}

	transacoes := router.Group("/transacoes", autenticado)
	{
		transacoes.POST("/", h.Transacao.Create)
		transacoes.GET("/", h.Transacao.GetAll)
		transacoes.GET("/:id", h.Transacao.GetOne)
		transacoes.PUT("/:id", h.Transacao.Update)
		transacoes.DELETE("/:id", h.Transacao.Delete)
	}
}
