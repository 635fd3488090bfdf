package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/kawanwagnner/API-Rest/models"
)

// NotificacaoRepository define as operações de Notificação no banco. A
// associação com o usuário é melhor esforço: LEFT JOIN, sem FK, então
// notificações com usuarioId pendente continuam sendo retornadas.
type NotificacaoRepository interface {
	Create(ctx context.Context, notificacao *models.Notificacao) (int64, error)
	GetByID(ctx context.Context, id int) (*models.Notificacao, error)
	GetAll(ctx context.Context) ([]models.Notificacao, error)
	Update(ctx context.Context, notificacao *models.Notificacao) error
	Delete(ctx context.Context, id int) error
}

type notificacaoRepositoryImpl struct {
	db *sql.DB
}

func NewNotificacaoRepository(db *sql.DB) NotificacaoRepository {
	return &notificacaoRepositoryImpl{db: db}
}

const notificacaoComUsuarioQuery = `SELECT n.id, n.titulo, n.mensagem, n.tipo, n.usuario_id, n.created_at, n.updated_at,
	cl.id, cl.nome, cl.email
	FROM notificacoes n
	LEFT JOIN clientes cl ON cl.id = n.usuario_id`

func scanNotificacaoComUsuario(row interface{ Scan(...any) error }) (*models.Notificacao, error) {
	var notificacao models.Notificacao
	var usuarioID sql.NullInt64
	var usuarioNome, usuarioEmail sql.NullString
	err := row.Scan(&notificacao.ID, &notificacao.Titulo, &notificacao.Mensagem, &notificacao.Tipo,
		&notificacao.UsuarioID, &notificacao.CreatedAt, &notificacao.UpdatedAt,
		&usuarioID, &usuarioNome, &usuarioEmail)
	if err != nil {
		return nil, err
	}
	if usuarioID.Valid {
		notificacao.Usuario = &models.ClienteResumo{
			ID:    int(usuarioID.Int64),
			Nome:  usuarioNome.String,
			Email: usuarioEmail.String,
		}
	}
	return &notificacao, nil
}

func (r *notificacaoRepositoryImpl) Create(ctx context.Context, notificacao *models.Notificacao) (int64, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO notificacoes (titulo, mensagem, tipo, usuario_id) VALUES (?, ?, ?, ?)",
		notificacao.Titulo, notificacao.Mensagem, notificacao.Tipo, notificacao.UsuarioID)
	if err != nil {
		return 0, fmt.Errorf("falha ao inserir notificação: %w", err)
	}
	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("falha ao obter id da nova notificação: %w", err)
	}
	return id, nil
}

func (r *notificacaoRepositoryImpl) GetByID(ctx context.Context, id int) (*models.Notificacao, error) {
	notificacao, err := scanNotificacaoComUsuario(
		r.db.QueryRowContext(ctx, notificacaoComUsuarioQuery+" WHERE n.id = ?", id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, models.ErrNaoEncontrado
		}
		return nil, fmt.Errorf("falha ao buscar notificação por id: %w", err)
	}
	return notificacao, nil
}

func (r *notificacaoRepositoryImpl) GetAll(ctx context.Context) ([]models.Notificacao, error) {
	rows, err := r.db.QueryContext(ctx, notificacaoComUsuarioQuery)
	if err != nil {
		return nil, fmt.Errorf("falha ao buscar notificações: %w", err)
	}
	defer rows.Close()

	var notificacoes []models.Notificacao
	for rows.Next() {
		notificacao, err := scanNotificacaoComUsuario(rows)
		if err != nil {
			return nil, fmt.Errorf("falha ao ler linha de notificação: %w", err)
		}
		notificacoes = append(notificacoes, *notificacao)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro ao iterar notificações: %w", err)
	}
	return notificacoes, nil
}

func (r *notificacaoRepositoryImpl) Update(ctx context.Context, notificacao *models.Notificacao) error {
	_, err := r.db.ExecContext(ctx,
		"UPDATE notificacoes SET titulo = ?, mensagem = ?, tipo = ?, usuario_id = ? WHERE id = ?",
		notificacao.Titulo, notificacao.Mensagem, notificacao.Tipo, notificacao.UsuarioID, notificacao.ID)
	if err != nil {
		return fmt.Errorf("falha ao atualizar notificação: %w", err)
	}
	return nil
}

func (r *notificacaoRepositoryImpl) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notificacoes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("falha ao deletar notificação: %w", err)
	}
	afetadas, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("falha ao verificar deleção de notificação: %w", err)
	}
	if afetadas == 0 {
		return models.ErrNaoEncontrado
	}
	return nil
}
