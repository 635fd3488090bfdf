// github.com/kawanwagnner/API-Rest/middleware/auth_middleware.go
package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kawanwagnner/API-Rest/auth"
)

// Chaves gravadas no contexto do gin após autenticação.
const (
	CtxClaims    = "claims"
	CtxUserID    = "userID"
	CtxUserEmail = "userEmail"
)

// Authenticate valida o bearer token das rotas protegidas. Token ausente e
// token inválido são falhas distintas, ambas 401. Não há retry nem refresh:
// o cliente precisa autenticar de novo.
func Authenticate(tokens *auth.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token de autenticação não fornecido"})
			return
		}

		// Formato esperado: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token de autenticação não fornecido"})
			return
		}

		claims, err := tokens.Verify(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"msg": "Token de autenticação inválido"})
			return
		}

		c.Set(CtxClaims, claims)
		c.Set(CtxUserID, claims.ID)
		c.Set(CtxUserEmail, claims.Email)

		c.Next()
	}
}
