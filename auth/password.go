// github.com/kawanwagnner/API-Rest/auth/password.go
package auth

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultCost é o fator de custo usado quando nenhum é configurado.
const DefaultCost = 10

// HashPassword gera o digest bcrypt da senha. O custo é ajustável; valores
// fora da faixa do bcrypt caem no DefaultCost.
func HashPassword(senha string, cost int) (string, error) {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = DefaultCost
	}
	bytes, err := bcrypt.GenerateFromPassword([]byte(senha), cost)
	if err != nil {
		return "", fmt.Errorf("falha ao gerar hash da senha: %w", err)
	}
	return string(bytes), nil
}

// CheckPasswordHash compara a senha em texto com o digest armazenado.
// A comparação do bcrypt é de tempo constante.
func CheckPasswordHash(senha, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(senha)) == nil
}
