package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/kawanwagnner/API-Rest/auth"
	"github.com/kawanwagnner/API-Rest/models"
	"github.com/kawanwagnner/API-Rest/repositories"
)

// AdministradorService espelha ClienteService para o namespace separado de
// administradores.
type AdministradorService interface {
	Create(ctx context.Context, req *models.CreateAdminRequest) (*models.Administrador, error)
	Login(ctx context.Context, email, senha string) (string, error)
	GetAll(ctx context.Context) ([]models.Administrador, error)
	GetByID(ctx context.Context, id int) (*models.Administrador, error)
	Update(ctx context.Context, id int, req *models.UpdateAdminRequest) (*models.Administrador, error)
	Delete(ctx context.Context, id int) (*models.Administrador, error)
}

type administradorServiceImpl struct {
	repo       repositories.AdministradorRepository
	tokens     *auth.TokenService
	bcryptCost int
}

func NewAdministradorService(repo repositories.AdministradorRepository, tokens *auth.TokenService, bcryptCost int) AdministradorService {
	return &administradorServiceImpl{repo: repo, tokens: tokens, bcryptCost: bcryptCost}
}

func (s *administradorServiceImpl) Create(ctx context.Context, req *models.CreateAdminRequest) (*models.Administrador, error) {
	if _, err := s.repo.GetByEmail(ctx, req.Email); err == nil {
		return nil, models.ErrDuplicado
	} else if !errors.Is(err, models.ErrNaoEncontrado) {
		return nil, fmt.Errorf("falha ao verificar e-mail do administrador: %w", err)
	}

	hash, err := auth.HashPassword(req.Senha, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	id, err := s.repo.Create(ctx, &models.Administrador{
		Nome:  req.Nome,
		Email: req.Email,
		Senha: hash,
		Idade: req.Idade,
	})
	if err != nil {
		return nil, err
	}

	return s.repo.GetByID(ctx, int(id))
}

func (s *administradorServiceImpl) Login(ctx context.Context, email, senha string) (string, error) {
	admin, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, models.ErrNaoEncontrado) {
			return "", models.ErrCredenciaisInvalidas
		}
		return "", fmt.Errorf("falha ao buscar administrador no login: %w", err)
	}

	if !auth.CheckPasswordHash(senha, admin.Senha) {
		return "", models.ErrCredenciaisInvalidas
	}

	return s.tokens.Issue(admin.ID, admin.Email)
}

func (s *administradorServiceImpl) GetAll(ctx context.Context) ([]models.Administrador, error) {
	admins, err := s.repo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	if len(admins) == 0 {
		return nil, models.ErrNaoEncontrado
	}
	return admins, nil
}

func (s *administradorServiceImpl) GetByID(ctx context.Context, id int) (*models.Administrador, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *administradorServiceImpl) Update(ctx context.Context, id int, req *models.UpdateAdminRequest) (*models.Administrador, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Email != nil && *req.Email != admin.Email {
		if _, err := s.repo.GetByEmail(ctx, *req.Email); err == nil {
			return nil, models.ErrDuplicado
		} else if !errors.Is(err, models.ErrNaoEncontrado) {
			return nil, fmt.Errorf("falha ao verificar e-mail do administrador: %w", err)
		}
		admin.Email = *req.Email
	}
	if req.Nome != nil {
		admin.Nome = *req.Nome
	}
	if req.Senha != nil {
		hash, err := auth.HashPassword(*req.Senha, s.bcryptCost)
		if err != nil {
			return nil, err
		}
		admin.Senha = hash
	}

	if err := s.repo.Update(ctx, admin); err != nil {
		return nil, err
	}
	return s.repo.GetByID(ctx, id)
}

func (s *administradorServiceImpl) Delete(ctx context.Context, id int) (*models.Administrador, error) {
	admin, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return nil, err
	}
	return admin, nil
}
