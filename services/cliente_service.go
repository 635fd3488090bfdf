// github.com/kawanwagnner/API-Rest/services/cliente_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kawanwagnner/API-Rest/auth"
	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/repositories"
)

// ClienteService é a lógica de negócio de Cliente: unicidade de e-mail,
// hashing de senha e login.
type ClienteService interface {
	Create(ctx context.Context, req *models.CreateClienteRequest) (*models.Cliente, error)
	Login(ctx context.Context, email, senha string) (string, error)
	GetAll(ctx context.Context) ([]models.Cliente, error)
	GetByID(ctx context.Context, id int) (*models.Cliente, error)
	Update(ctx context.Context, id int, req *models.UpdateClienteRequest) (*models.Cliente, error)
	Delete(ctx context.Context, id int) (*models.Cliente, error)
}

type clienteServiceImpl struct {
	repo       repositories.ClienteRepository
	tokens     *auth.TokenService
	bcryptCost int
}

func NewClienteService(repo repositories.ClienteRepository, tokens *auth.TokenService, bcryptCost int) ClienteService {
	return &clienteServiceImpl{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *clienteServiceImpl) Create(ctx context.Context, req *models.CreateClienteRequest) (*models.Cliente, error) {
	// Pré-check de e-mail; a constraint UNIQUE do banco cobre a corrida.
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, models.ErrDuplicado
	} else if !errors.Is(err, models.ErrNaoEncontrado) {
		return nil, fmt.Errorf("falha ao verificar e-mail do cliente: %w", err)
	}

	hash, err := auth.HashPassword(req.Senha, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, &models.Cliente{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: hash,
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, int(id))
}

// Login mescla e-mail desconhecido e senha incorreta no mesmo erro genérico
// para não permitir enumeração de usuários.
func (s *clienteServiceImpl) Login(ctx context.Context, email, senha string) (string, error) {
	cliente, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			return "", models.ErrCredenciaisInvalidas
		}
		return "", fmt.Errorf("falha ao buscar cliente no login: %w", err)
	}

	if !auth.CheckPasswordHash(senha, cliente.Senha) {
		return "", models.ErrCredenciaisInvalidas
	}

	return s.tokens.Issue(cliente.ID, cliente.Email)
}

func (s *clienteServiceImpl) GetAll(ctx context.Context) ([]models.Cliente, error) {
	clientes, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	// Convenção da API: coleção vazia responde 404.
	if len(clientes) == 0 {
		return nil, models.ErrNaoEncontrado
	}
	return clientes, nil
}

func (s *clienteServiceImpl) GetByID(ctx context.Context, id int) (*models.Cliente, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *clienteServiceImpl) Update(ctx context.Context, id int, req *models.UpdateClienteRequest) (*models.Cliente, error) {
	cliente, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != cliente.Email {
		if _, err := s.repo.GetByEmail(ctx, *req.Email); err == nil {
			return nil, models.ErrDuplicado
		} else if !errors.Is(err, models.ErrNaoEncontrado) {
			return nil, fmt.Errorf("falha ao verificar e-mail do cliente: %w", err)
		}
		cliente.Email = *req.Email
	}
	if req.Nome != nil {
		cliente.Nome = *req.Nome
	}
	if req.Senha != nil {
		hash, err := auth.HashPassword(*req.Senha, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		cliente.Senha = hash
	}

	if err := s.repo.Update(ctx, cliente); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *clienteServiceImpl) Delete(ctx context.Context, id int) (*models.Cliente, error) {
	cliente, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return cliente, nil
}
