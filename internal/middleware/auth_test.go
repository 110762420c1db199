package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/santiagoprado21/southpark-reservas/internal/auth"
	"github.com/santiagoprado21/southpark-reservas/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

func protectedRouter(t *testing.T, tokens *auth.TokenManager, adminOnly bool) http.Handler {
	t.Helper()

	r := ginext.New("test")
	handler := func(c *ginext.Context) {
		c.JSON(http.StatusOK, ginext.H{
			"userId": c.GetString("userId"),
			"role":   c.GetString("role"),
		})
	}

	if adminOnly {
		r.GET("/protegido", Authenticate(tokens), RequireAdmin(), handler)
	} else {
		r.GET("/protegido", Authenticate(tokens), handler)
	}
	return r
}

func issueToken(t *testing.T, tokens *auth.TokenManager, role domain.Role) string {
	t.Helper()
	token, err := tokens.Issue(&domain.User{
		ID:    "u1",
		Email: "admin@southpark.com",
		Role:  role,
	})
	require.NoError(t, err)
	return token
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokens := auth.NewTokenManager("clave-de-prueba-suficiente", time.Hour)
	r := protectedRouter(t, tokens, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, domain.RoleEmpleado))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"userId":"u1"`)
}

func TestAuthenticate_MissingHeader(t *testing.T) {
	tokens := auth.NewTokenManager("clave-de-prueba-suficiente", time.Hour)
	r := protectedRouter(t, tokens, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token requerido")
}

func TestAuthenticate_MalformedHeader(t *testing.T) {
	tokens := auth.NewTokenManager("clave-de-prueba-suficiente", time.Hour)
	r := protectedRouter(t, tokens, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Basic abc123")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthenticate_ExpiredToken(t *testing.T) {
	expired := auth.NewTokenManager("clave-de-prueba-suficiente", -time.Minute)
	fresh := auth.NewTokenManager("clave-de-prueba-suficiente", time.Hour)
	r := protectedRouter(t, fresh, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, expired, domain.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "token inválido o expirado")
}

func TestAuthenticate_WrongSecret(t *testing.T) {
	other := auth.NewTokenManager("otra-clave-completamente-distinta", time.Hour)
	tokens := auth.NewTokenManager("clave-de-prueba-suficiente", time.Hour)
	r := protectedRouter(t, tokens, false)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, other, domain.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAdmin_AllowsAdmin(t *testing.T) {
	tokens := auth.NewTokenManager("clave-de-prueba-suficiente", time.Hour)
	r := protectedRouter(t, tokens, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, domain.RoleAdmin))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireAdmin_RejectsEmpleado(t *testing.T) {
	tokens := auth.NewTokenManager("clave-de-prueba-suficiente", time.Hour)
	r := protectedRouter(t, tokens, true)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, tokens, domain.RoleEmpleado))
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Contains(t, w.Body.String(), "se requiere rol de administrador")
}
