// github.com/kawanwagnner/API-Rest/services/conta_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/repositories"
)

// ContaService é a lógica de negócio de Conta. Unicidade de numero com
// pré-check; a existência do cliente dono fica por conta da FK do banco.
type ContaService interface {
	Create(ctx context.Context, req *models.CreateContaRequest) (*models.Conta, error)
	GetAll(ctx context.Context) ([]models.Conta, error)
	GetByID(ctx context.Context, id int) (*models.Conta, error)
	Update(ctx context.Context, id int, req *models.UpdateContaRequest) (*models.Conta, error)
	Delete(ctx context.Context, id int) (*models.Conta, error)
}

type contaServiceImpl struct {
	repo repositories.ContaRepository
}

func NewContaService(repo repositories.ContaRepository) ContaService {
	return &contaServiceImpl{repo: repo}
}

func (s *contaServiceImpl) Create(ctx context.Context, req *models.CreateContaRequest) (*models.Conta, error) {
	if _, err := s.repo.GetByNumero(ctx, req.Numero); err == nil {
		return nil, models.ErrDuplicado
	} else if !errors.Is(err, models.ErrNaoEncontrado) {
		return nil, fmt.Errorf("falha ao verificar número da conta: %w", err)
	}

	id, err := s.repo.Create(ctx, &models.Conta{
		Numero:    req.Numero,
		Tipo:      req.Tipo,
		Saldo:     req.Saldo,
		ClienteID: req.ClienteID,
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, int(id))
}

func (s *contaServiceImpl) GetAll(ctx context.Context) ([]models.Conta, error) {
	contas, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(contas) == 0 {
		return nil, models.ErrNaoEncontrado
	}
	return contas, nil
}

func (s *contaServiceImpl) GetByID(ctx context.Context, id int) (*models.Conta, error) {
	return s.repo.GetByID(ctx, id)
}

// Update aplica somente os campos presentes. Saldo usa ponteiro: saldo 0
// explícito é atualização, campo ausente não é.
func (s *contaServiceImpl) Update(ctx context.Context, id int, req *models.UpdateContaRequest) (*models.Conta, error) {
	conta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Numero != nil && *req.Numero != conta.Numero {
		if _, err := s.repo.GetByNumero(ctx, *req.Numero); err == nil {
			return nil, models.ErrDuplicado
		} else if !errors.Is(err, models.ErrNaoEncontrado) {
			return nil, fmt.Errorf("falha ao verificar número da conta: %w", err)
		}
		conta.Numero = *req.Numero
	}
	if req.Tipo != nil {
		conta.Tipo = *req.Tipo
	}
	if req.Saldo != nil {
		conta.Saldo = *req.Saldo
	}
	if req.ClienteID != nil {
		conta.ClienteID = *req.ClienteID
	}

	if err := s.repo.Update(ctx, conta); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *contaServiceImpl) Delete(ctx context.Context, id int) (*models.Conta, error) {
	conta, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return conta, nil
}
