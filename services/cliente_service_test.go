// github.com/kawanwagnner/API-Rest/services/cliente_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kawanwagnner/API-Rest/auth"
	"github.com/kawanwagnner/API-Rest/models"
)

// Custo mínimo do bcrypt para os testes não ficarem lentos.
const custoTeste = 4

func novoClienteService() (ClienteService, *fakeClienteRepo) {
	repo := newFakeClienteRepo()
	tokens := auth.NewTokenService([]byte("segredo-de-teste"), time.Hour)
	return NewClienteService(repo, tokens, custoTeste), repo
}

func TestClienteServiceCreateHashesSenha(t *testing.T) {
	svc, repo := novoClienteService()

	cliente, err := svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome:  "Maria",
		Email: "maria@exemplo.com",
		Senha: "senha-secreta",
	})
	require.NoError(t, err)
	assert.Equal(t, "Maria", cliente.Nome)

	armazenado := repo.clientes[cliente.ID]
	assert.NotEqual(t, "senha-secreta", armazenado.Senha)
	assert.True(t, auth.CheckPasswordHash("senha-secreta", armazenado.Senha))
}

func TestClienteServiceCreateDuplicateEmail(t *testing.T) {
	svc, _ := novoClienteService()

	_, err := svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome: "Maria", Email: "maria@exemplo.com", Senha: "senha-secreta",
	})
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome: "Outra Maria", Email: "maria@exemplo.com", Senha: "outra-senha",
	})
	assert.ErrorIs(t, err, models.ErrDuplicado)
}

func TestClienteServiceLogin(t *testing.T) {
	svc, _ := novoClienteService()

	criado, err := svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome: "Maria", Email: "maria@exemplo.com", Senha: "senha-secreta",
	})
	require.NoError(t, err)

	token, err := svc.Login(context.Background(), "maria@exemplo.com", "senha-secreta")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	tokens := auth.NewTokenService([]byte("segredo-de-teste"), time.Hour)
	claims, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, criado.ID, claims.ID)
	assert.Equal(t, "maria@exemplo.com", claims.Email)
}

// E-mail desconhecido e senha errada respondem o mesmo erro, sem distinguir
// qual dos dois falhou.
func TestClienteServiceLoginCredenciaisInvalidas(t *testing.T) {
	svc, _ := novoClienteService()

	_, err := svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome: "Maria", Email: "maria@exemplo.com", Senha: "senha-secreta",
	})
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "maria@exemplo.com", "senha-errada")
	assert.ErrorIs(t, err, models.ErrCredenciaisInvalidas)

	_, err = svc.Login(context.Background(), "desconhecida@exemplo.com", "senha-secreta")
	assert.ErrorIs(t, err, models.ErrCredenciaisInvalidas)
}

func TestClienteServiceGetAllEmpty(t *testing.T) {
	svc, _ := novoClienteService()

	_, err := svc.GetAll(context.Background())
	assert.ErrorIs(t, err, models.ErrNaoEncontrado)
}

func TestClienteServiceUpdatePartial(t *testing.T) {
	svc, repo := novoClienteService()

	criado, err := svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome: "Maria", Email: "maria@exemplo.com", Senha: "senha-secreta",
	})
	require.NoError(t, err)
	senhaAntes := repo.clientes[criado.ID].Senha

	nome := "Maria Silva"
	atualizado, err := svc.Update(context.Background(), criado.ID, &models.UpdateClienteRequest{Nome: &nome})
	require.NoError(t, err)

	assert.Equal(t, "Maria Silva", atualizado.Nome)
	assert.Equal(t, "maria@exemplo.com", atualizado.Email)
	assert.Equal(t, senhaAntes, repo.clientes[criado.ID].Senha)
}

func TestClienteServiceUpdateEmailEmUso(t *testing.T) {
	svc, _ := novoClienteService()

	_, err := svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome: "Maria", Email: "maria@exemplo.com", Senha: "senha-secreta",
	})
	require.NoError(t, err)
	joao, err := svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome: "João", Email: "joao@exemplo.com", Senha: "senha-secreta",
	})
	require.NoError(t, err)

	emUso := "maria@exemplo.com"
	_, err = svc.Update(context.Background(), joao.ID, &models.UpdateClienteRequest{Email: &emUso})
	assert.ErrorIs(t, err, models.ErrDuplicado)
}

func TestClienteServiceUpdateSenhaRehash(t *testing.T) {
	svc, repo := novoClienteService()

	criado, err := svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome: "Maria", Email: "maria@exemplo.com", Senha: "senha-antiga",
	})
	require.NoError(t, err)

	nova := "senha-nova"
	_, err = svc.Update(context.Background(), criado.ID, &models.UpdateClienteRequest{Senha: &nova})
	require.NoError(t, err)

	armazenado := repo.clientes[criado.ID]
	assert.True(t, auth.CheckPasswordHash("senha-nova", armazenado.Senha))
	assert.False(t, auth.CheckPasswordHash("senha-antiga", armazenado.Senha))
}

func TestClienteServiceDeleteReturnsSnapshot(t *testing.T) {
	svc, repo := novoClienteService()

	criado, err := svc.Create(context.Background(), &models.CreateClienteRequest{
		Nome: "Maria", Email: "maria@exemplo.com", Senha: "senha-secreta",
	})
	require.NoError(t, err)

	deletado, err := svc.Delete(context.Background(), criado.ID)
	require.NoError(t, err)
	assert.Equal(t, "Maria", deletado.Nome)
	assert.Empty(t, repo.clientes)

	_, err = svc.Delete(context.Background(), criado.ID)
	assert.ErrorIs(t, err, models.ErrNaoEncontrado)
}
