package models

import "errors"

// Erros de domínio compartilhados pelos repositórios e serviços. Os handlers
// mapeiam cada um para o status HTTP correspondente.
var (
	// ErrNaoEncontrado indica registro inexistente ou coleção vazia.
	ErrNaoEncontrado = errors.New("registro não encontrado")
	// ErrDuplicado indica violação de campo único (email, numero).
	ErrDuplicado = errors.New("valor único já está em uso")
	// ErrCredenciaisInvalidas cobre tanto e-mail desconhecido quanto senha
	// incorreta, para não revelar quais e-mails existem.
	ErrCredenciaisInvalidas = errors.New("e-mail ou senha incorretos")
	// ErrContaReferenciada indica que a conta de origem ou destino de uma
	// transação não existe.
	ErrContaReferenciada = errors.New("conta de origem ou destino não encontrada")
)
