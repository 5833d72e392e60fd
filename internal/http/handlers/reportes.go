package handlers

import (
	"context"
	"net/http"

	"sisgad/internal/entities"
	"sisgad/internal/repositories"
	"sisgad/internal/services"

	"github.com/gin-gonic/gin"
)

type ReportesHandler struct {
	Service services.Reportes
	Repo    repositories.Generic
}

// GET /api/reportes/quejas-por-estado
func (h ReportesHandler) QuejasPorEstado(c *gin.Context) {
	h.responder(c, h.Service.QuejasPorEstado)
}

// GET /api/reportes/telefonos-por-municipio
func (h ReportesHandler) TelefonosPorMunicipio(c *gin.Context) {
	h.responder(c, h.Service.TelefonosPorMunicipio)
}

// GET /api/reportes/lineas-por-tipo
func (h ReportesHandler) LineasPorTipo(c *gin.Context) {
	h.responder(c, h.Service.LineasPorTipo)
}

func (h ReportesHandler) responder(c *gin.Context, query func(context.Context) ([]services.Fila, error)) {
	filas, err := query(c.Request.Context())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	RespondData(c, http.StatusOK, filas)
}

// GET /api/quejas/:id/reporte
func (h ReportesHandler) QuejaPDF(c *gin.Context) {
	id, ok := paramID(c)
	if !ok {
		return
	}
	ent, _ := entities.ByName("quejas")
	queja, err := h.Repo.GetByID(c.Request.Context(), ent, id)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	pdfBytes, filename, err := services.BuildQuejaPDF(queja)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
