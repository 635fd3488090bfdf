// github.com/kawanwagnner/API-Rest/config/config.go
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"github.com/kawanwagnner/API-Rest/auth"
)

// Config reúne toda a configuração do processo. É montada uma única vez em
// main e injetada nos componentes que precisam dela; nenhum pacote lê
// variáveis de ambiente por conta própria.
type Config struct {
	Port       string
	DBDSN      string
	JWTSecret  []byte
	TokenTTL   time.Duration
	BcryptCost int
	Debug      bool
}

// Load carrega .env (se existir) e monta a configuração a partir do
// ambiente. SECRET e DB_DSN são obrigatórios: sem eles o startup falha.
func Load() (*Config, error) {
	_ = godotenv.Load()

	secret := os.Getenv("SECRET")
	if secret == "" {
		return nil, fmt.Errorf("variável de ambiente SECRET não definida")
	}

	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		return nil, fmt.Errorf("variável de ambiente DB_DSN não definida")
	}

	cfg := &Config{
		Port:       "3000",
		DBDSN:      dsn,
		JWTSecret:  []byte(secret),
		TokenTTL:   auth.DefaultTTL,
		BcryptCost: auth.DefaultCost,
		Debug:      os.Getenv("GIN_MODE") != "release",
	}

	if port := os.Getenv("PORT"); port != "" {
		cfg.Port = port
	}

	if v := os.Getenv("TOKEN_TTL_HOURS"); v != "" {
		horas, err := strconv.Atoi(v)
		if err != nil || horas <= 0 {
			return nil, fmt.Errorf("TOKEN_TTL_HOURS inválido: %q", v)
		}
		cfg.TokenTTL = time.Duration(horas) * time.Hour
	}

	if v := os.Getenv("BCRYPT_COST"); v != "" {
		cost, err := strconv.Atoi(v)
		if err != nil || cost <= 0 {
			return nil, fmt.Errorf("BCRYPT_COST inválido: %q", v)
		}
		cfg.BcryptCost = cost
	}

	return cfg, nil
}
