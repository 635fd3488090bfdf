package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kawanwagnner/API-Rest/models"
)

// TransacaoRepository define as operações de Transação no banco. Transações
// são registros planos: inserir uma não mexe em saldo nenhum. As leituras
// carregam o resumo das contas de origem e destino (id, numero, tipo).
type TransacaoRepository interface {
	Create(ctx context.Context, transacao *models.Transacao) (int64, error)
	GetByID(ctx context.Context, id int) (*models.Transacao, error)
	GetAll(ctx context.Context) ([]models.Transacao, error)
	Update(ctx context.Context, transacao *models.Transacao) error
	Delete(ctx context.Context, id int) error
}

type transacaoRepositoryImpl struct {
	db *sql.DB
}

func NewTransacaoRepository(db *sql.DB) TransacaoRepository {
	return &transacaoRepositoryImpl{db: db}
}

const transacaoComContasQuery = `SELECT t.id, t.tipo, t.valor, t.conta_origem_id, t.conta_destino_id, t.descricao,
	t.created_at, t.updated_at,
	o.id, o.numero, o.tipo,
	d.id, d.numero, d.tipo
	FROM transacoes t
	INNER JOIN contas o ON o.id = t.conta_origem_id
	INNER JOIN contas d ON d.id = t.conta_destino_id`

func scanTransacaoComContas(row interface{ Scan(...any) error }) (*models.Transacao, error) {
	var transacao models.Transacao
	var origem, destino models.ContaResumo
	err := row.Scan(&transacao.ID, &transacao.Tipo, &transacao.Valor,
		&transacao.ContaOrigemID, &transacao.ContaDestinoID, &transacao.Descricao,
		&transacao.CreatedAt, &transacao.UpdatedAt,
		&origem.ID, &origem.Numero, &origem.Tipo,
		&destino.ID, &destino.Numero, &destino.Tipo)
	if err != nil {
		return nil, err
	}
	transacao.ContaOrigem = &origem
	transacao.ContaDestino = &destino
	return &transacao, nil
}

func (r *transacaoRepositoryImpl) Create(ctx context.Context, transacao *models.Transacao) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO transacoes (tipo, valor, conta_origem_id, conta_destino_id, descricao) VALUES (?, ?, ?, ?, ?)",
		transacao.Tipo, transacao.Valor, transacao.ContaOrigemID, transacao.ContaDestinoID, transacao.Descricao)
	if err != nil {
		return 0, fmt.Errorf("falha ao inserir transação: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("falha ao obter id da nova transação: %w", err)
	}
	return id, nil
}

func (r *transacaoRepositoryImpl) GetByID(ctx context.Context, id int) (*models.Transacao, error) {
	transacao, err := scanTransacaoComContas(
		r.db.QueryRowContext(ctx, transacaoComContasQuery+" WHERE t.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar transação por id: %w", err)
	}
	return transacao, nil
}

func (r *transacaoRepositoryImpl) GetAll(ctx context.Context) ([]models.Transacao, error) {
	rows, err := r.db.QueryContext(ctx, transacaoComContasQuery)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar transações: %w", err)
	}
	defer rows.Close()

	var transacoes []models.Transacao
	for rows.Next() {
		transacao, err := scanTransacaoComContas(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler linha de transação: %w", err)
		}
		transacoes = append(transacoes, *transacao)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar transações: %w", err)
	}
	return transacoes, nil
}

func (r *transacaoRepositoryImpl) Update(ctx context.Context, transacao *models.Transacao) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE transacoes SET tipo = ?, valor = ?, conta_origem_id = ?, conta_destino_id = ?, descricao = ? WHERE id = ?",
		transacao.Tipo, transacao.Valor, transacao.ContaOrigemID, transacao.ContaDestinoID, transacao.Descricao, transacao.ID)
	if err != nil {
		return fmt.Errorf("falha ao atualizar transação: %w", err)
	}
	return nil
}

func (r *transacaoRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM transacoes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("falha ao deletar transação: %w", err)
	}
	afetadas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("falha ao verificar deleção de transação: %w", err)
	}
	if afetadas == 0 {
		return models.ErrNaoEncontrado
	}
	return nil
}
