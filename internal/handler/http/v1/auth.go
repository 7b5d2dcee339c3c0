package v1

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shenikar/community_incident_service/internal/models"
	"github.com/shenikar/community_incident_service/internal/service"
	"github.com/sirupsen/logrus"
)

const (
	ctxUserIDKey = "userID"
	ctxRoleKey   = "role"
)

// extractBearerToken достает токен из заголовка Authorization
func extractBearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader != "" && strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}

// AuthRequiredMiddleware - middleware аутентификации по JWT.
// Пока токен не проверен, ни один защищенный хэндлер не выполняется.
func AuthRequiredMiddleware(auth service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := extractBearerToken(c)
		if tokenString == "" {
			log.Warn("Authorization token missing from request")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		claims, err := auth.ParseToken(tokenString)
		if err != nil {
			log.WithError(err).Warn("Invalid authorization token")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		c.Set(ctxUserIDKey, claims.UserID)
		c.Set(ctxRoleKey, claims.Role)
		c.Next()
	}
}

// AdminRequiredMiddleware - middleware проверки роли admin.
// Роль перечитывается из записи пользователя, клейму из токена
// здесь не доверяем. Не-админ получает 403 и ни байта защищенного ответа.
func AdminRequiredMiddleware(auth service.AuthService, log *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserIDFromContext(c)
		if !ok {
			log.Warn("Admin check without authenticated user")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "authorization token required"})
			return
		}

		user, err := auth.GetUser(c.Request.Context(), userID)
		if err != nil {
			log.WithError(err).Warn("Failed to load user for admin check")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			return
		}

		if user.Role != models.RoleAdmin {
			log.WithField("user_id", userID).Warn("Admin route denied for non-admin user")
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
			return
		}

		c.Next()
	}
}

// UserIDFromContext возвращает идентификатор аутентифицированного пользователя
func UserIDFromContext(c *gin.Context) (uuid.UUID, bool) {
	value, exists := c.Get(ctxUserIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := value.(uuid.UUID)
	return id, ok
}
