package handlers

import (
	"net/http"

	"sisgad/internal/domain"
	"sisgad/internal/http/middleware"
	"sisgad/internal/utils"

	"github.com/gin-gonic/gin"
)

// RespondDomainError maps the error taxonomy onto HTTP statuses. Anything
// outside the four expected kinds is a 500 with the detail kept out of the
// response unless gin runs in debug mode.
func RespondDomainError(c *gin.Context, err error) {
	switch {
	case domain.IsValidation(err):
		RespondError(c, http.StatusBadRequest, err.Error(), domain.ValidationDetails(err))
	case domain.IsUnauthorized(err):
		RespondError(c, http.StatusUnauthorized, err.Error(), nil)
	case domain.IsForbidden(err):
		RespondError(c, http.StatusForbidden, err.Error(), nil)
	case domain.IsNotFound(err):
		RespondError(c, http.StatusNotFound, err.Error(), nil)
	default:
		utils.LogEvent(middleware.GetRequestID(c), "http", "internal_error", err.Error())
		msg := "error interno del servidor"
		if gin.Mode() == gin.DebugMode {
			msg = err.Error()
		}
		RespondError(c, http.StatusInternalServerError, msg, nil)
	}
}
