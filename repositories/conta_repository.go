// github.com/kawanwagnner/API-Rest/repositories/conta_repository.go
package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kawanwagnner/API-Rest/models"
)

// ContaRepository define as operações de Conta no banco. As leituras carregam
// o resumo do cliente dono (id, nome, email) via JOIN.
type ContaRepository interface {
	Create(ctx context.Context, conta *models.Conta) (int64, error)
	GetByID(ctx context.Context, id int) (*models.Conta, error)
	GetByNumero(ctx context.Context, numero string) (*models.Conta, error)
	GetAll(ctx context.Context) ([]models.Conta, error)
	Exists(ctx context.Context, id int) (bool, error)
	Update(ctx context.Context, conta *models.Conta) error
	Delete(ctx context.Context, id int) error
}

type contaRepositoryImpl struct {
	db *sql.DB
}

func NewContaRepository(db *sql.DB) ContaRepository {
	return &contaRepositoryImpl{db: db}
}

const contaComClienteQuery = `SELECT c.id, c.numero, c.tipo, c.saldo, c.cliente_id, c.created_at, c.updated_at,
	cl.id, cl.nome, cl.email
	FROM contas c
	INNER JOIN clientes cl ON cl.id = c.cliente_id`

func scanContaComCliente(row interface{ Scan(...any) error }) (*models.Conta, error) {
	var conta models.Conta
	var cliente models.ClienteResumo
	err := row.Scan(&conta.ID, &conta.Numero, &conta.Tipo, &conta.Saldo, &conta.ClienteID,
		&conta.CreatedAt, &conta.UpdatedAt, &cliente.ID, &cliente.Nome, &cliente.Email)
	if err != nil {
		return nil, err
	}
	conta.Cliente = &cliente
	return &conta, nil
}

// Create não verifica a existência do cliente na aplicação: a FK do banco é
// o único guarda.
func (r *contaRepositoryImpl) Create(ctx context.Context, conta *models.Conta) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO contas (numero, tipo, saldo, cliente_id) VALUES (?, ?, ?, ?)",
		conta.Numero, conta.Tipo, conta.Saldo, conta.ClienteID)
	if err != nil {
		if duplicado(err) {
			return 0, models.ErrDuplicado
		}
		return 0, fmt.Errorf("falha ao inserir conta: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("falha ao obter id da nova conta: %w", err)
	}
	return id, nil
}

func (r *contaRepositoryImpl) GetByID(ctx context.Context, id int) (*models.Conta, error) {
	conta, err := scanContaComCliente(r.db.QueryRowContext(ctx, contaComClienteQuery+" WHERE c.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar conta por id: %w", err)
	}
	return conta, nil
}

// GetByNumero serve o pré-check de unicidade; não carrega a associação.
func (r *contaRepositoryImpl) GetByNumero(ctx context.Context, numero string) (*models.Conta, error) {
	var conta models.Conta
	err := r.db.QueryRowContext(ctx,
		"SELECT id, numero, tipo, saldo, cliente_id, created_at, updated_at FROM contas WHERE numero = ?", numero).
		Scan(&conta.ID, &conta.Numero, &conta.Tipo, &conta.Saldo, &conta.ClienteID, &conta.CreatedAt, &conta.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar conta por número: %w", err)
	}
	return &conta, nil
}

func (r *contaRepositoryImpl) GetAll(ctx context.Context) ([]models.Conta, error) {
	rows, err := r.db.QueryContext(ctx, contaComClienteQuery)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar contas: %w", err)
	}
	defer rows.Close()

	var contas []models.Conta
	for rows.Next() {
		conta, err := scanContaComCliente(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler linha de conta: %w", err)
		}
		contas = append(contas, *conta)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar contas: %w", err)
	}
	return contas, nil
}

func (r *contaRepositoryImpl) Exists(ctx context.Context, id int) (bool, error) {
	var existe bool
	err := r.db.QueryRowContext(ctx, "SELECT EXISTS(SELECT 1 FROM contas WHERE id = ?)", id).Scan(&existe)
	if err != nil {
		return false, fmt.Errorf("falha ao verificar existência da conta: %w", err)
	}
	return existe, nil
}

func (r *contaRepositoryImpl) Update(ctx context.Context, conta *models.Conta) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE contas SET numero = ?, tipo = ?, saldo = ?, cliente_id = ? WHERE id = ?",
		conta.Numero, conta.Tipo, conta.Saldo, conta.ClienteID, conta.ID)
	if err != nil {
		if duplicado(err) {
			return models.ErrDuplicado
		}
		return fmt.Errorf("falha ao atualizar conta: %w", err)
	}
	return nil
}

func (r *contaRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM contas WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("falha ao deletar conta: %w", err)
	}
	afetadas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("falha ao verificar deleção de conta: %w", err)
	}
	if afetadas == 0 {
		return models.ErrNaoEncontrado
	}
	return nil
}
