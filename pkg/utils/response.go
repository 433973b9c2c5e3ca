package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Rodolf-GitHub/jatishop-back/internal/dto"
	apperrors "github.com/Rodolf-GitHub/jatishop-back/pkg/errors"
)

func SendSuccessResponse(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, dto.NewSuccessResponse(message, data))
}

func SendErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, dto.NewErrorResponse(message))
}

// SendAppError maps a service error to its HTTP status; anything that is
// not an AppError becomes a generic 500 without leaking internals.
func SendAppError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		SendErrorResponse(c, appErr.Code, appErr.Message)
		return
	}
	SendErrorResponse(c, http.StatusInternalServerError, "Error interno del servidor")
}

func SendValidationError(c *gin.Context, err error) {
	SendErrorResponse(c, http.StatusBadRequest, "Validation failed: "+err.Error())
}

func SendNotFoundError(c *gin.Context, resource string) {
	SendErrorResponse(c, http.StatusNotFound, resource+" no encontrado")
}

func SendUnauthorizedError(c *gin.Context, message string) {
	SendErrorResponse(c, http.StatusUnauthorized, message)
}

func SendForbiddenError(c *gin.Context, message string) {
	SendErrorResponse(c, http.StatusForbidden, message)
}
