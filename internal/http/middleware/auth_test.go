package middleware

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"sisgad/internal/auth"
	"sisgad/internal/domain"

	"github.com/gin-gonic/gin"
)

func testEngine(tokens auth.Manager, load IdentityLoader, perm string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protegido", Authenticate(tokens, load), RequirePermission(perm), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return r
}

func identityWith(perms ...string) IdentityLoader {
	return func(ctx context.Context, userID int64) (domain.Identity, error) {
		return domain.Identity{
			ID:      userID,
			Usuario: "prueba",
			Roles:   []domain.Role{{ID: 1, Nombre: "Rol", Permisos: perms}},
		}, nil
	}
}

func TestMissingAuthorizationHeaderIs401(t *testing.T) {
	tokens := auth.NewManager("secreto", time.Hour)
	r := testEngine(tokens, identityWith("usuarios.leer"), "usuarios.leer")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestMalformedHeaderIs401(t *testing.T) {
	tokens := auth.NewManager("secreto", time.Hour)
	r := testEngine(tokens, identityWith("usuarios.leer"), "usuarios.leer")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Token abcdef")
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}

func TestValidTokenWithoutPermissionIs403Never401(t *testing.T) {
	tokens := auth.NewManager("secreto", time.Hour)
	r := testEngine(tokens, identityWith("quejas.leer"), "usuarios.leer")

	token, err := tokens.Issue(7, "prueba")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", w.Code)
	}
}

func TestValidTokenWithPermissionPasses(t *testing.T) {
	tokens := auth.NewManager("secreto", time.Hour)
	r := testEngine(tokens, identityWith("usuarios.leer", "quejas.leer"), "usuarios.leer")

	token, err := tokens.Issue(7, "prueba")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d (%s)", w.Code, w.Body.String())
	}
}

func TestDeletedUserIs401(t *testing.T) {
	tokens := auth.NewManager("secreto", time.Hour)
	load := func(ctx context.Context, userID int64) (domain.Identity, error) {
		return domain.Identity{}, domain.UnauthorizedError{Msg: "usuario dado de baja"}
	}
	r := testEngine(tokens, load, "usuarios.leer")

	token, err := tokens.Issue(7, "prueba")
	if err != nil {
		t.Fatalf("issue error: %v", err)
	}

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/protegido", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", w.Code)
	}
}
