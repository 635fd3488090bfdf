// github.com/kawanwagnner/API-Rest/auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenInvalido cobre assinatura inválida, token expirado e formato ruim.
var ErrTokenInvalido = errors.New("token inválido")

// DefaultTTL é a validade padrão da sessão após o login.
const DefaultTTL = 10 * time.Hour

// Claims é a identidade embutida no token: id e e-mail do principal.
type Claims struct {
	ID    int    `json:"id"`
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// TokenService emite e verifica tokens HS256 com segredo e TTL injetados na
// inicialização, sem estado global.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret []byte, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = DefaultTTL
	}
	return &TokenService{secret: secret, ttl: ttl}
}

// Issue assina um token para o principal identificado por id e email.
func (s *TokenService) Issue(id int, email string) (string, error) {
	agora := time.Now()
	claims := &Claims{
		ID:    id,
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(agora.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(agora),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	assinado, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("falha ao assinar token: %w", err)
	}
	return assinado, nil
}

// Verify valida assinatura e expiração e devolve as claims decodificadas.
// Qualquer falha vira ErrTokenInvalido; a ausência de token é tratada antes,
// no middleware.
func (s *TokenService) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de assinatura inesperado: %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalido, err)
	}
	if !token.Valid {
		return nil, ErrTokenInvalido
	}
	return claims, nil
}
