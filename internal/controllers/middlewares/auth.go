package middlewares

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/linkstats/internal/models"
	"github.com/avolkov/linkstats/internal/tokens"
)

// CurrentAccountKey ключ gin-контекста с аккаунтом текущего запроса.
const CurrentAccountKey = "currentAccount"

// AccountResolver находит аккаунт по имени пользователя из токена.
type AccountResolver interface {
	GetByUsername(ctx context.Context, username string) (*models.Account, error)
}

// AuthMiddleware проверяет bearer-токен и кладет аккаунт в контекст запроса.
// Запрос без валидного токена обрывается с кодом 401 до обращения к хранилищу
// основных данных.
func AuthMiddleware(accounts AccountResolver, jwtSecret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
			return
		}

		claims, err := tokens.ValidateAccountJWT(tokenString, jwtSecret)
		if err != nil {
			_ = c.Error(err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		acc, accErr := accounts.GetByUsername(c.Request.Context(), claims.Username)
		if accErr != nil {
			_ = c.Error(accErr)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(CurrentAccountKey, acc)
		c.Next()
	}
}
