package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kawanwagnner/API-Rest/models"
)

// AdministradorRepository define as operações de Administrador no banco.
type AdministradorRepository interface {
	Create(ctx context.Context, admin *models.Administrador) (int64, error)
	GetByID(ctx context.Context, id int) (*models.Administrador, error)
	GetByEmail(ctx context.Context, email string) (*models.Administrador, error)
	GetAll(ctx context.Context) ([]models.Administrador, error)
	Update(ctx context.Context, admin *models.Administrador) error
	Delete(ctx context.Context, id int) error
}

type administradorRepositoryImpl struct {
	db *sql.DB
}

func NewAdministradorRepository(db *sql.DB) AdministradorRepository {
	return &administradorRepositoryImpl{db: db}
}

func (r *administradorRepositoryImpl) Create(ctx context.Context, admin *models.Administrador) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO administradores (nome, email, senha, idade) VALUES (?, ?, ?, ?)",
		admin.Nome, admin.Email, admin.Senha, admin.Idade)
	if err != nil {
		if duplicado(err) {
			return 0, models.ErrDuplicado
		}
		return 0, fmt.Errorf("falha ao inserir administrador: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("falha ao obter id do novo administrador: %w", err)
	}
	return id, nil
}

func (r *administradorRepositoryImpl) GetByID(ctx context.Context, id int) (*models.Administrador, error) {
	var admin models.Administrador
	err := r.db.QueryRowContext(ctx,
		"SELECT id, nome, email, senha, idade, created_at, updated_at FROM administradores WHERE id = ?", id).
		Scan(&admin.ID, &admin.Nome, &admin.Email, &admin.Senha, &admin.Idade, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar administrador por id: %w", err)
	}
	return &admin, nil
}

func (r *administradorRepositoryImpl) GetByEmail(ctx context.Context, email string) (*models.Administrador, error) {
	var admin models.Administrador
	err := r.db.QueryRowContext(ctx,
		"SELECT id, nome, email, senha, idade, created_at, updated_at FROM administradores WHERE email = ?", email).
		Scan(&admin.ID, &admin.Nome, &admin.Email, &admin.Senha, &admin.Idade, &admin.CreatedAt, &admin.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar administrador por e-mail: %w", err)
	}
	return &admin, nil
}

func (r *administradorRepositoryImpl) GetAll(ctx context.Context) ([]models.Administrador, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, nome, email, idade, created_at, updated_at FROM administradores")
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar administradores: %w", err)
	}
	defer rows.Close()

	var admins []models.Administrador
	for rows.Next() {
		var admin models.Administrador
		if err := rows.Scan(&admin.ID, &admin.Nome, &admin.Email, &admin.Idade, &admin.CreatedAt, &admin.UpdatedAt); err != nil {
			return nil, fmt.Errorf("falha ao ler linha de administrador: %w", err)
		}
		admins = append(admins, admin)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar administradores: %w", err)
	}
	return admins, nil
}

func (r *administradorRepositoryImpl) Update(ctx context.Context, admin *models.Administrador) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE administradores SET nome = ?, email = ?, senha = ? WHERE id = ?",
		admin.Nome, admin.Email, admin.Senha, admin.ID)
	if err != nil {
		if duplicado(err) {
			return models.ErrDuplicado
		}
		return fmt.Errorf("falha ao atualizar administrador: %w", err)
	}
	return nil
}

func (r *administradorRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM administradores WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("falha ao deletar administrador: %w", err)
	}
	afetadas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("falha ao verificar deleção de administrador: %w", err)
	}
	if afetadas == 0 {
		return models.ErrNaoEncontrado
	}
	return nil
}
