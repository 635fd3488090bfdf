// github.com/kawanwagnner/API-Rest/services/transacao_service.go
package services

import (
	"context"

	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/repositories"
)

// TransacaoService registra intenções de transferência. As contas de origem
// e destino precisam existir na criação e a existência é reverificada quando
// esses campos mudam. A verificação e o insert são operações separadas, sem
// atomicidade entre elas; nenhum saldo é alterado.
type TransacaoService interface {
	Create(ctx context.Context, req *models.CreateTransacaoRequest) (*models.Transacao, error)
	GetAll(ctx context.Context) ([]models.Transacao, error)
	GetByID(ctx context.Context, id int) (*models.Transacao, error)
	Update(ctx context.Context, id int, req *models.UpdateTransacaoRequest) (*models.Transacao, error)
	Delete(ctx context.Context, id int) (*models.Transacao, error)
}

type transacaoServiceImpl struct {
	transacaoRepo repositories.TransacaoRepository
	contaRepo     repositories.ContaRepository
}

func NewTransacaoService(transacaoRepo repositories.TransacaoRepository, contaRepo repositories.ContaRepository) TransacaoService {
	return &transacaoServiceImpl{transacaoRepo: transacaoRepo, contaRepo: contaRepo}
}

func (s *transacaoServiceImpl) contaExiste(ctx context.Context, id int) error {
	existe, err := s.contaRepo.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !existe {
		return models.ErrContaReferenciada
	}
	return nil
}

func (s *transacaoServiceImpl) Create(ctx context.Context, req *models.CreateTransacaoRequest) (*models.Transacao, error) {
	if err := s.contaExiste(ctx, req.ContaOrigemID); err != nil {
		return nil, err
	}
	if err := s.contaExiste(ctx, req.ContaDestinoID); err != nil {
		return nil, err
	}

	id, err := s.transacaoRepo.Create(ctx, &models.Transacao{
		Tipo:           req.Tipo,
		Valor:          req.Valor,
		ContaOrigemID:  req.ContaOrigemID,
		ContaDestinoID: req.ContaDestinoID,
		Descricao:      req.Descricao,
	})
	if err != nil {
		return nil, err
	}

	return s.transacaoRepo.GetByID(ctx, int(id))
}

func (s *transacaoServiceImpl) GetAll(ctx context.Context) ([]models.Transacao, error) {
	transacoes, err := s.transacaoRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(transacoes) == 0 {
		return nil, models.ErrNaoEncontrado
	}
	return transacoes, nil
}

func (s *transacaoServiceImpl) GetByID(ctx context.Context, id int) (*models.Transacao, error) {
	return s.transacaoRepo.GetByID(ctx, id)
}

// Update aplica só os campos presentes; valor usa ponteiro para aceitar zero
// explícito.
func (s *transacaoServiceImpl) Update(ctx context.Context, id int, req *models.UpdateTransacaoRequest) (*models.Transacao, error) {
	transacao, err := s.transacaoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Tipo != nil {
		transacao.Tipo = *req.Tipo
	}
	if req.Valor != nil {
		transacao.Valor = *req.Valor
	}
	if req.ContaOrigemID != nil {
		if err := s.contaExiste(ctx, *req.ContaOrigemID); err != nil {
			return nil, err
		}
		transacao.ContaOrigemID = *req.ContaOrigemID
	}
	if req.ContaDestinoID != nil {
		if err := s.contaExiste(ctx, *req.ContaDestinoID); err != nil {
			return nil, err
		}
		transacao.ContaDestinoID = *req.ContaDestinoID
	}
	if req.Descricao != nil {
		transacao.Descricao = *req.Descricao
	}

	if err := s.transacaoRepo.Update(ctx, transacao); err != nil {
		return nil, err
	}
	return s.transacaoRepo.GetByID(ctx, id)
}

func (s *transacaoServiceImpl) Delete(ctx context.Context, id int) (*models.Transacao, error) {
	transacao, err := s.transacaoRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.transacaoRepo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return transacao, nil
}
