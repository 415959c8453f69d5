package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/justsurfingit/devjobs/internal/dtos"
	apperrors "github.com/justsurfingit/devjobs/internal/errors"
	"github.com/justsurfingit/devjobs/internal/validation"
)

// statusFor maps a service error onto an HTTP status.
func statusFor(err error) int {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		return http.StatusUnprocessableEntity
	}
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge
	}
	return apperrors.HTTPStatus(err)
}

// respondError writes err as JSON. Validation problems are listed per field;
// everything else gets a generic message and internal details are only
// logged.
func respondError(c *gin.Context, log *zap.Logger, message string, err error) {
	var verrs validation.ValidationErrors
	if errors.As(err, &verrs) {
		c.JSON(http.StatusUnprocessableEntity, dtos.ValidationErrorResponse{Errors: verrs.ByField()})
		return
	}

	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		log.Error(message, append(apperrors.LogFields(err), zap.String("path", c.FullPath()))...)
	}
	c.JSON(status, gin.H{"error": message})
}
