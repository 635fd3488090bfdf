package services

import (
	"context"

	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/repositories"
)

// NotificacaoService não valida usuarioId: a referência ao usuário é melhor
// esforço por decisão do modelo.
type NotificacaoService interface {
	Create(ctx context.Context, req *models.CreateNotificacaoRequest) (*models.Notificacao, error)
	GetAll(ctx context.Context) ([]models.Notificacao, error)
	GetByID(ctx context.Context, id int) (*models.Notificacao, error)
	Update(ctx context.Context, id int, req *models.UpdateNotificacaoRequest) (*models.Notificacao, error)
	Delete(ctx context.Context, id int) (*models.Notificacao, error)
}

type notificacaoServiceImpl struct {
	repo repositories.NotificacaoRepository
}

func NewNotificacaoService(repo repositories.NotificacaoRepository) NotificacaoService {
	return &notificacaoServiceImpl{repo: repo}
}

func (s *notificacaoServiceImpl) Create(ctx context.Context, req *models.CreateNotificacaoRequest) (*models.Notificacao, error) {
	id, err := s.repo.Create(ctx, &models.Notificacao{
		Titulo:    req.Titulo,
		Mensagem:  req.Mensagem,
		Tipo:      req.Tipo,
		UsuarioID: req.UsuarioID,
	})
	if err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, int(id))
}

func (s *notificacaoServiceImpl) GetAll(ctx context.Context) ([]models.Notificacao, error) {
	notificacoes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(notificacoes) == 0 {
		return nil, models.ErrNaoEncontrado
	}
	return notificacoes, nil
}

func (s *notificacaoServiceImpl) GetByID(ctx context.Context, id int) (*models.Notificacao, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *notificacaoServiceImpl) Update(ctx context.Context, id int, req *models.UpdateNotificacaoRequest) (*models.Notificacao, error) {
	notificacao, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Titulo != nil {
		notificacao.Titulo = *req.Titulo
	}
	if req.Mensagem != nil {
		notificacao.Mensagem = *req.Mensagem
	}
	if req.Tipo != nil {
		notificacao.Tipo = *req.Tipo
	}
	if req.UsuarioID != nil {
		notificacao.UsuarioID = *req.UsuarioID
	}

	if err := s.repo.Update(ctx, notificacao); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *notificacaoServiceImpl) Delete(ctx context.Context, id int) (*models.Notificacao, error) {
	notificacao, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return notificacao, nil
}
