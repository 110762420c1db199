package middleware

import (
	"net/http"
	"strings"

	"github.com/santiagoprado21/southpark-reservas/internal/auth"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const (
	ctxUserID = "userId"
	ctxEmail  = "email"
	ctxRole   = "role"
)

// Authenticate validates the Bearer token and stores the staff identity in
// the request context.
func Authenticate(tokens *auth.TokenManager) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "token requerido"},
			)
			return
		}

		claims, err := tokens.Parse(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized,
				ginext.H{"success": false, "message": "token inválido o expirado"},
			)
			return
		}

		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxEmail, claims.Email)
		c.Set(ctxRole, string(claims.Role))
		c.Next()
	}
}

// RequireAdmin rejects authenticated requests whose role is not ADMIN.
func RequireAdmin() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		role, _ := c.Get(ctxRole)
		if role != string(domain.RoleAdmin) {
			c.AbortWithStatusJSON(http.StatusForbidden,
				ginext.H{"success": false, "message": "se requiere rol de administrador"},
			)
			return
		}
		c.Next()
	}
}
