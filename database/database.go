// github.com/kawanwagnner/API-Rest/database/database.go
package database

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql" // driver MySQL

	"github.com/kawanwagnner/API-Rest/config"
)

// Connect abre o pool de conexões MySQL a partir da configuração e valida a
// conexão com um ping. O DSN precisa de parseTime=true para as colunas de
// timestamp.
func Connect(cfg *config.Config) (*sql.DB, error) {
	db, err := sql.Open("mysql", cfg.DBDSN)
	if err != nil {
		return nil, fmt.Errorf("falha ao abrir conexão com o banco: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("falha ao pingar o banco: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	return db, nil
}
