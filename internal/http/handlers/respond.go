package handlers

import (
	"net/http"

	"sisgad/internal/domain"

	"github.com/gin-gonic/gin"
)

// Uniform envelope across every endpoint:
//   success: {"success":true,"data":...,"pagination":{...}?}
//   failure: {"success":false,"error":"...","details":[...]?}

func RespondData(c *gin.Context, status int, data any) {
	c.JSON(status, gin.H{"success": true, "data": data})
}

func RespondList(c *gin.Context, result domain.ListResult) {
	c.JSON(http.StatusOK, gin.H{
		"success":    true,
		"data":       result.Data,
		"pagination": result.Pagination,
	})
}

func RespondError(c *gin.Context, status int, message string, details []string) {
	payload := gin.H{"success": false, "error": message}
	if len(details) > 0 {
		payload["details"] = details
	}
	c.JSON(status, payload)
}

// BindJSONOrError ensures body is present and parsable.
func BindJSONOrError(c *gin.Context, dst any) bool {
	if c.Request.Body == nil {
		RespondError(c, http.StatusBadRequest, "cuerpo de la petición vacío", nil)
		return false
	}
	if err := c.ShouldBindJSON(dst); err != nil {
		RespondError(c, http.StatusBadRequest, "cuerpo de la petición no válido", []string{err.Error()})
		return false
	}
	return true
}
