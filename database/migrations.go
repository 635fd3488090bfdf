// github.com/kawanwagnner/API-Rest/database/migrations.go
package database

import (
	"context"
	"database/sql"
	"fmt"
)

// Esquema aplicado de forma idempotente no startup. As chaves UNIQUE em
// clientes.email, administradores.email e contas.numero são a verificação
// autoritativa de unicidade: o pré-check nos serviços é só o caminho rápido
// de UX, a corrida check-then-insert é resolvida aqui.
//
// notificacoes.usuario_id não tem FK de propósito: a referência é melhor
// esforço.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS clientes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		senha VARCHAR(255) NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_clientes_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS administradores (
		id INT AUTO_INCREMENT PRIMARY KEY,
		nome VARCHAR(255) NOT NULL,
		email VARCHAR(255) NOT NULL,
		senha VARCHAR(255) NOT NULL,
		idade INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_administradores_email (email)
	)`,
	`CREATE TABLE IF NOT EXISTS contas (
		id INT AUTO_INCREMENT PRIMARY KEY,
		numero VARCHAR(32) NOT NULL,
		tipo VARCHAR(32) NOT NULL,
		saldo DECIMAL(14,2) NOT NULL DEFAULT 0,
		cliente_id INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		UNIQUE KEY uq_contas_numero (numero),
		CONSTRAINT fk_contas_cliente FOREIGN KEY (cliente_id) REFERENCES clientes (id)
	)`,
	`CREATE TABLE IF NOT EXISTS notificacoes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		titulo VARCHAR(255) NOT NULL,
		mensagem TEXT NOT NULL,
		tipo VARCHAR(32) NOT NULL,
		usuario_id INT NOT NULL,
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP
	)`,
	`CREATE TABLE IF NOT EXISTS transacoes (
		id INT AUTO_INCREMENT PRIMARY KEY,
		tipo VARCHAR(32) NOT NULL,
		valor DECIMAL(14,2) NOT NULL DEFAULT 0,
		conta_origem_id INT NOT NULL,
		conta_destino_id INT NOT NULL,
		descricao VARCHAR(255) NOT NULL DEFAULT '',
		created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP ON UPDATE CURRENT_TIMESTAMP,
		CONSTRAINT fk_transacoes_origem FOREIGN KEY (conta_origem_id) REFERENCES contas (id),
		CONSTRAINT fk_transacoes_destino FOREIGN KEY (conta_destino_id) REFERENCES contas (id)
	)`,
}

// Migrate aplica o esquema em ordem.
func Migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range migrations {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("falha ao aplicar migração: %w", err)
		}
	}
	return nil
}
