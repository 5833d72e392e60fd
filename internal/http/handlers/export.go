package handlers

import (
	"net/http"

	"sisgad/internal/services"

	"github.com/gin-gonic/gin"
)

// GET /api/<entity>/exportar
//
// Same filter/search/sort contract as List, but windowed to the export cap
// instead of the page size, rendered as XLSX.
func (h EntityHandler) Export(c *gin.Context) {
	q, err := h.Ent.ParseListQuery(c.Request.URL.Query())
	if err != nil {
		RespondDomainError(c, err)
		return
	}
	q.Page = 1
	q.Limit = services.ExportLimit

	result, err := h.Repo.List(c.Request.Context(), h.Ent, q)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	data, filename, err := services.BuildXLSX(h.Ent, result.Data)
	if err != nil {
		RespondDomainError(c, err)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", data)
}
