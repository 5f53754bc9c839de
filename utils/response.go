package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"restaurant-backend/apperrors"
)

func JSONSuccess(c *gin.Context, code int, data interface{}) {
	c.JSON(code, gin.H{"success": true, "data": data})
}

func JSONError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"success": false, "error": message})
}

// JSONAppError maps the error taxonomy to HTTP status codes.
func JSONAppError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperrors.ErrValidation),
		errors.Is(err, apperrors.ErrEmptyOrder):
		JSONError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperrors.ErrNotFound):
		JSONError(c, http.StatusNotFound, err.Error())
	case errors.Is(err, apperrors.ErrDuplicate),
		errors.Is(err, apperrors.ErrAlreadyPaid),
		errors.Is(err, apperrors.ErrNotFoundOrAlreadyPaid),
		errors.Is(err, apperrors.ErrInvalidTransition):
		JSONError(c, http.StatusConflict, err.Error())
	case errors.Is(err, apperrors.ErrUnauthorized):
		JSONError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, apperrors.ErrForbidden),
		errors.Is(err, apperrors.ErrTenantBlocked):
		JSONError(c, http.StatusForbidden, err.Error())
	case errors.Is(err, apperrors.ErrAccountCreationFailed),
		errors.Is(err, apperrors.ErrPartialProvisioning):
		JSONError(c, http.StatusBadRequest, err.Error())
	default:
		JSONError(c, http.StatusInternalServerError, "internal error")
	}
}
