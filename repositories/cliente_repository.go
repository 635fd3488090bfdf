// github.com/kawanwagnner/API-Rest/repositories/cliente_repository.go
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kawanwagnner/API-Rest/models"
)

// ClienteRepository define as operações de Cliente no banco.
type ClienteRepository interface {
	Create(ctx context.Context, cliente *models.Cliente) (int64, error)
	GetByID(ctx context.Context, id int) (*models.Cliente, error)
	GetByEmail(ctx context.Context, email string) (*models.Cliente, error)
	GetAll(ctx context.Context) ([]models.Cliente, error)
	Update(ctx context.Context, cliente *models.Cliente) error
	Delete(ctx context.Context, id int) error
}

type clienteRepositoryImpl struct {
	db *sql.DB
}

func NewClienteRepository(db *sql.DB) ClienteRepository {
	return &clienteRepositoryImpl{db: db}
}

func (r *clienteRepositoryImpl) Create(ctx context.Context, cliente *models.Cliente) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO clientes (nome, email, senha) VALUES (?, ?, ?)",
		cliente.Nome, cliente.Email, cliente.Senha)
	if err != nil {
		if duplicado(err) {
			return 0, models.ErrDuplicado
		}
		return 0, fmt.Errorf("falha ao inserir cliente: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("falha ao obter id do novo cliente: %w", err)
	}
	return id, nil
}

// GetByID carrega o cliente com o digest da senha; a serialização JSON nunca
// o expõe.
func (r *clienteRepositoryImpl) GetByID(ctx context.Context, id int) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.QueryRowContext(ctx,
		"SELECT id, nome, email, senha, created_at, updated_at FROM clientes WHERE id = ?", id).
		Scan(&cliente.ID, &cliente.Nome, &cliente.Email, &cliente.Senha, &cliente.CreatedAt, &cliente.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar cliente por id: %w", err)
	}
	return &cliente, nil
}

func (r *clienteRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Cliente, error) {
	var cliente models.Cliente
	err := r.db.QueryRowContext(ctx,
		"SELECT id, nome, email, senha, created_at, updated_at FROM clientes WHERE email = ?", email).
		Scan(&cliente.ID, &cliente.Nome, &cliente.Email, &cliente.Senha, &cliente.CreatedAt, &cliente.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar cliente por e-mail: %w", err)
	}
	return &cliente, nil
}

func (r *clienteRepositoryImpl) GetAll(ctx context.Context) ([]models.Cliente, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, nome, email, created_at, updated_at FROM clientes")
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar clientes: %w", err)
	}
	defer rows.Close()

	var clientes []models.Cliente
	for rows.Next() {
		var cliente models.Cliente
		if err := rows.Scan(&cliente.ID, &cliente.Nome, &cliente.Email, &cliente.CreatedAt, &cliente.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler linha de cliente: %w", err)
		}
		clientes = append(clientes, cliente)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar clientes: %w", err)
	}
	return clientes, nil
}

func (r *clienteRepositoryImpl) Update(ctx context.Context, cliente *models.Cliente) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE clientes SET nome = ?, email = ?, senha = ? WHERE id = ?",
		cliente.Nome, cliente.Email, cliente.Senha, cliente.ID)
	if err != nil {
		if duplicado(err) {
			return models.ErrDuplicado
		}
		return fmt.Errorf("falha ao atualizar cliente: %w", err)
	}
	return nil
}

func (r *clienteRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM clientes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("falha ao deletar cliente: %w", err)
	}
	afetadas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("falha ao verificar deleção de cliente: %w", err)
	}
	if afetadas == 0 {
		return models.ErrNaoEncontrado
	}
	return nil
}
