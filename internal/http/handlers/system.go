package handlers

import (
	"database/sql"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
)

var (
	routerMu sync.RWMutex
	router   *gin.Engine
)

// SetRouter stores the active gin engine for later inspection (e.g., /api/routes).
func SetRouter(r *gin.Engine) {
	routerMu.Lock()
	defer routerMu.Unlock()
	router = r
}

type SystemHandler struct {
	DB *sql.DB
}

func (h SystemHandler) Health(c *gin.Context) {
	RespondData(c, http.StatusOK, gin.H{"status": "ok", "servicio": "sisgad5-backend"})
}

func (h SystemHandler) DBCheck(c *gin.Context) {
	if h.DB == nil {
		RespondError(c, http.StatusInternalServerError, "base de datos no conectada", nil)
		return
	}
	var count int
	if err := h.DB.QueryRowContext(c.Request.Context(), "SELECT COUNT(*) FROM usuarios").Scan(&count); err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, gin.H{"conexion": "ok", "usuarios": count})
}

func (h SystemHandler) Routes(c *gin.Context) {
	routerMu.RLock()
	r := router
	routerMu.RUnlock()
	if r == nil {
		RespondError(c, http.StatusServiceUnavailable, "router no disponible", nil)
		return
	}

	routes := r.Routes()
	out := make([]gin.H, 0, len(routes))
	for _, rt := range routes {
		out = append(out, gin.H{"method": rt.Method, "path": rt.Path})
	}
	RespondData(c, http.StatusOK, gin.H{"routes": out})
}
