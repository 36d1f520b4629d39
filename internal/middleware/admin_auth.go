package middleware

import (
	"crypto/subtle"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/barber-agenda/internal/config"
)

// AdminAuthMiddleware protege as rotas /api/admin. Aceita o token
// estático (header x-admin-token ou ?token=, compat com o painel) ou um
// JWT emitido pelo /api/admin/login. A credencial vem injetada via
// config, nunca lida de variável global.
func AdminAuthMiddleware(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := c.GetHeader("x-admin-token")
		if token == "" {
			token = c.Query("token")
		}

		if token != "" && TokenMatches(cfg, token) {
			c.Next()
			return
		}

		authHeader := c.GetHeader("Authorization")
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") && validAdminJWT(cfg, parts[1]) {
			c.Next()
			return
		}

		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"mensagem": "Não autorizado"})
	}
}

func TokenMatches(cfg *config.Config, token string) bool {
	if cfg.AdminTokenHash != "" {
		return bcrypt.CompareHashAndPassword(
			[]byte(cfg.AdminTokenHash),
			[]byte(token),
		) == nil
	}

	if cfg.AdminToken == "" {
		return false
	}

	return subtle.ConstantTimeCompare(
		[]byte(cfg.AdminToken),
		[]byte(token),
	) == 1
}

func validAdminJWT(cfg *config.Config, tokenString string) bool {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {

		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenMalformed
		}
		return []byte(cfg.JWTSecret), nil
	})
	if err != nil || !token.Valid {
		return false
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return false
	}

	role, _ := claims["role"].(string)
	return role == "admin"
}
