// github.com/kawanwagnner/API-Rest/main.go
package main

import (
	"context"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/kawanwagnner/API-Rest/auth"
	"github.com/kawanwagnner/API-Rest/config"
	"github.com/kawanwagnner/API-Rest/database"
	"github.com/kawanwagnner/API-Rest/handlers"
	"github.com/kawanwagnner/API-Rest/middleware"
	"github.com/kawanwagnner/API-Rest/repositories"
	"github.com/kawanwagnner/API-Rest/routes"
	"github.com/kawanwagnner/API-Rest/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		boot := zerolog.New(os.Stderr)
		boot.Fatal().Err(err).Msg("Configuração inválida")
	}

	log := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.Debug {
		log = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("Falha ao conectar no banco de dados")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := database.Migrate(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("Falha ao aplicar as migrações")
	}
	log.Info().Msg("Banco de dados sincronizado")

	tokens := auth.NewTokenService(cfg.JWTSecret, cfg.TokenTTL)

	clienteRepo := repositories.NewClienteRepository(db)
	adminRepo := repositories.NewAdministradorRepository(db)
	contaRepo := repositories.NewContaRepository(db)
	notificacaoRepo := repositories.NewNotificacaoRepository(db)
	transacaoRepo := repositories.NewTransacaoRepository(db)

	h := &routes.Handlers{
		Cliente:     handlers.NewClienteHandler(services.NewClienteService(clienteRepo, tokens, cfg.BcryptCost), log),
		Admin:       handlers.NewAdministradorHandler(services.NewAdministradorService(adminRepo, tokens, cfg.BcryptCost), log),
		Conta:       handlers.NewContaHandler(services.NewContaService(contaRepo), log),
		Notificacao: handlers.NewNotificacaoHandler(services.NewNotificacaoService(notificacaoRepo), log),
		Transacao:   handlers.NewTransacaoHandler(services.NewTransacaoService(transacaoRepo, contaRepo), log),
	}

	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(log), middleware.Metrics())
	routes.SetupRoutes(router, h, tokens)

	log.Info().Str("port", cfg.Port).Msg("Servidor iniciado")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("Servidor encerrado com erro")
	}
}
