package handlers

import (
	"net/http"

	"sisgad/internal/auth"
	"sisgad/internal/domain"
	"sisgad/internal/http/middleware"
	"sisgad/internal/repositories"
	"sisgad/internal/utils"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type AuthHandler struct {
	Usuarios repositories.Usuarios
	Tokens   auth.Manager
}

type loginRequest struct {
	Usuario  string `json:"usuario"`
	Password string `json:"password"`
}

// POST /api/auth/login
func (h AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if !BindJSONOrError(c, &req) {
		return
	}
	if utils.TrimOrEmpty(req.Usuario) == "" || req.Password == "" {
		RespondError(c, http.StatusBadRequest, "faltan campos obligatorios",
			[]string{"usuario es obligatorio", "password es obligatorio"})
		return
	}

	cred, err := h.Usuarios.FindByLogin(c.Request.Context(), utils.TrimOrEmpty(req.Usuario))
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	if cred.Esbaja {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "usuario dado de baja"})
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(cred.PasswordHash), []byte(req.Password)); err != nil {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "usuario o contraseña incorrectos"})
		return
	}

	ident, err := h.Usuarios.LoadIdentity(c.Request.Context(), cred.ID)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	token, err := h.Tokens.Issue(cred.ID, cred.Usuario)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	utils.LogEvent(middleware.GetRequestID(c), "auth", "login", "usuario "+cred.Usuario)
	RespondData(c, http.StatusOK, gin.H{
		"token":   token,
		"usuario": ident,
	})
}

// GET /api/auth/perfil
func (h AuthHandler) Perfil(c *gin.Context) {
	ident, ok := middleware.GetIdentity(c)
	if !ok {
		RespondDomainError(c, domain.UnauthorizedError{Msg: "identidad no presente en la petición"})
		return
	}
	RespondData(c, http.StatusOK, gin.H{
		"usuario":  ident,
		"permisos": ident.Permissions(),
	})
}

// HashPassword is the BeforeWrite hook of the usuarios entity: the plain
// password never reaches the store.
func HashPassword(payload map[string]any) error {
	raw, ok := payload["password"].(string)
	if !ok {
		return nil
	}
	if raw == "" {
		delete(payload, "password")
		return nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(raw), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	payload["password"] = string(hash)
	return nil
}
