package handlers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"sisgad/internal/domain"
	"sisgad/internal/entities"
	"sisgad/internal/http/middleware"
	"sisgad/internal/repositories"
	"sisgad/internal/utils"

	"github.com/gin-gonic/gin"
)

// EntityHandler serves the five CRUD routes for one registry entry.
// BeforeWrite lets an entity transform its payload before it reaches the
// store (usuarios hashes the password there).
type EntityHandler struct {
	Ent         entities.Entity
	Repo        repositories.Generic
	BeforeWrite func(payload map[string]any) error
}

// GET /api/<entity>
func (h EntityHandler) List(c *gin.Context) {
	q, err := h.Ent.ParseListQuery(c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	result, err := h.Repo.List(c.Request.Context(), h.Ent, q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondList(c, result)
}

// GET /api/<entity>/:id
func (h EntityHandler) GetByID(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	rec, err := h.Repo.GetByID(c.Request.Context(), h.Ent, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, rec)
}

// POST /api/<entity>
func (h EntityHandler) Create(c *gin.Context) {
	payload := map[string]any{}
	if !BindJSONOrError(c, &payload) {
		return
	}
	if h.BeforeWrite != nil {
		if err := h.BeforeWrite(payload); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	rec, err := h.Repo.Create(c.Request.Context(), h.Ent, payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), h.Ent.Name, "create", fmt.Sprintf("id %v", rec["id"]))
	RespondData(c, http.StatusCreated, rec)
}

// PUT /api/<entity>/:id
func (h EntityHandler) Update(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	payload := map[string]any{}
	if !BindJSONOrError(c, &payload) {
		return
	}
	if h.BeforeWrite != nil {
		if err := h.BeforeWrite(payload); err != nil {
			RespondDomainError(c, err)
			return
		}
	}

	rec, err := h.Repo.Update(c.Request.Context(), h.Ent, id, payload)
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, rec)
}

// DELETE /api/<entity>/:id
func (h EntityHandler) Delete(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	if err := h.Repo.Delete(c.Request.Context(), h.Ent, id); err != nil {
		RespondDomainError(c, err)
		return
	}
	utils.LogEvent(middleware.GetRequestID(c), h.Ent.Name, "delete", "id "+strconv.FormatInt(id, 10))
	RespondData(c, http.StatusOK, gin.H{"id": id, "eliminado": true})
}

func paramID(c *gin.Context) (int64, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		RespondDomainError(c, domain.ValidationError{
			Msg:     "id no válido",
			Details: []string{"id debe ser un entero positivo"},
		})
		return 0, false
	}
	return id, true
}
