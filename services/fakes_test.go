// github.com/kawanwagnner/API-Rest/services/fakes_test.go
package services

import (
	"context"
	"sort"

	"github.com/kawanwagnner/API-Rest/models"
)

// Fakes em memória para os repositórios. O suficiente para exercitar a lógica
// de negócio; o SQL de verdade é coberto nos testes do pacote repositories.

type fakeClienteRepo struct {
	seq      int
	clientes map[int]*models.Cliente
}

func newFakeClienteRepo() *fakeClienteRepo {
	return &fakeClienteRepo{clientes: map[int]*models.Cliente{}}
}

func (f *fakeClienteRepo) Create(_ context.Context, cliente *models.Cliente) (int64, error) {
	for _, existente := range f.clientes {
		if existente.Email == cliente.Email {
			return 0, models.ErrDuplicado
		}
	}
	f.seq++
	copia := *cliente
	copia.ID = f.seq
	f.clientes[copia.ID] = &copia
	return int64(copia.ID), nil
}

func (f *fakeClienteRepo) GetByID(_ context.Context, id int) (*models.Cliente, error) {
	cliente, ok := f.clientes[id]
	if !ok {
		return nil, models.ErrNaoEncontrado
	}
	copia := *cliente
	return &copia, nil
}

func (f *fakeClienteRepo) GetByEmail(_ context.Context, email string) (*models.Cliente, error) {
	for _, cliente := range f.clientes {
		if cliente.Email == email {
			copia := *cliente
			return &copia, nil
		}
	}
	return nil, models.ErrNaoEncontrado
}

func (f *fakeClienteRepo) GetAll(_ context.Context) ([]models.Cliente, error) {
	var clientes []models.Cliente
	for _, cliente := range f.clientes {
		clientes = append(clientes, *cliente)
	}
	sort.Slice(clientes, func(i, j int) bool { return clientes[i].ID < clientes[j].ID })
	return clientes, nil
}

func (f *fakeClienteRepo) Update(_ context.Context, cliente *models.Cliente) error {
	if _, ok := f.clientes[cliente.ID]; !ok {
		return models.ErrNaoEncontrado
	}
	for id, existente := range f.clientes {
		if id != cliente.ID && existente.Email == cliente.Email {
			return models.ErrDuplicado
		}
	}
	copia := *cliente
	f.clientes[cliente.ID] = &copia
	return nil
}

func (f *fakeClienteRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.clientes[id]; !ok {
		return models.ErrNaoEncontrado
	}
	delete(f.clientes, id)
	return nil
}

type fakeContaRepo struct {
	seq    int
	contas map[int]*models.Conta
}

func newFakeContaRepo() *fakeContaRepo {
	return &fakeContaRepo{contas: map[int]*models.Conta{}}
}

func (f *fakeContaRepo) Create(_ context.Context, conta *models.Conta) (int64, error) {
	for _, existente := range f.contas {
		if existente.Numero == conta.Numero {
			return 0, models.ErrDuplicado
		}
	}
	f.seq++
	copia := *conta
	copia.ID = f.seq
	f.contas[copia.ID] = &copia
	return int64(copia.ID), nil
}

func (f *fakeContaRepo) GetByID(_ context.Context, id int) (*models.Conta, error) {
	conta, ok := f.contas[id]
	if !ok {
		return nil, models.ErrNaoEncontrado
	}
	copia := *conta
	return &copia, nil
}

func (f *fakeContaRepo) GetByNumero(_ context.Context, numero string) (*models.Conta, error) {
	for _, conta := range f.contas {
		if conta.Numero == numero {
			copia := *conta
			return &copia, nil
		}
	}
	return nil, models.ErrNaoEncontrado
}

func (f *fakeContaRepo) GetAll(_ context.Context) ([]models.Conta, error) {
	var contas []models.Conta
	for _, conta := range f.contas {
		contas = append(contas, *conta)
	}
	sort.Slice(contas, func(i, j int) bool { return contas[i].ID < contas[j].ID })
	return contas, nil
}

func (f *fakeContaRepo) Exists(_ context.Context, id int) (bool, error) {
	_, ok := f.contas[id]
	return ok, nil
}

func (f *fakeContaRepo) Update(_ context.Context, conta *models.Conta) error {
	if _, ok := f.contas[conta.ID]; !ok {
		return models.ErrNaoEncontrado
	}
	copia := *conta
	f.contas[conta.ID] = &copia
	return nil
}

func (f *fakeContaRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.contas[id]; !ok {
		return models.ErrNaoEncontrado
	}
	delete(f.contas, id)
	return nil
}

type fakeTransacaoRepo struct {
	seq        int
	transacoes map[int]*models.Transacao
}

func newFakeTransacaoRepo() *fakeTransacaoRepo {
	return &fakeTransacaoRepo{transacoes: map[int]*models.Transacao{}}
}

func (f *fakeTransacaoRepo) Create(_ context.Context, transacao *models.Transacao) (int64, error) {
	f.seq++
	copia := *transacao
	copia.ID = f.seq
	f.transacoes[copia.ID] = &copia
	return int64(copia.ID), nil
}

func (f *fakeTransacaoRepo) GetByID(_ context.Context, id int) (*models.Transacao, error) {
	transacao, ok := f.transacoes[id]
	if !ok {
		return nil, models.ErrNaoEncontrado
	}
	copia := *transacao
	return &copia, nil
}

func (f *fakeTransacaoRepo) GetAll(_ context.Context) ([]models.Transacao, error) {
	var transacoes []models.Transacao
	for _, transacao := range f.transacoes {
		transacoes = append(transacoes, *transacao)
	}
	sort.Slice(transacoes, func(i, j int) bool { return transacoes[i].ID < transacoes[j].ID })
	return transacoes, nil
}

func (f *fakeTransacaoRepo) Update(_ context.Context, transacao *models.Transacao) error {
	if _, ok := f.transacoes[transacao.ID]; !ok {
		return models.ErrNaoEncontrado
	}
	copia := *transacao
	f.transacoes[transacao.ID] = &copia
	return nil
}

func (f *fakeTransacaoRepo) Delete(_ context.Context, id int) error {
	if _, ok := f.transacoes[id]; !ok {
		return models.ErrNaoEncontrado
	}
	delete(f.transacoes, id)
	return nil
}
