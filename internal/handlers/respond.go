package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/FaizFaisalHafidz/project-gustamil-sub000/internal/apperrors"
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

// bindingErrorFields flattens gin's binding errors into the same field-scoped
// map shape the services produce, so clients see one error format.
func bindingErrorFields(err error) gin.H {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		fields := make(map[string]string, len(verrs))
		for _, fe := range verrs {
			switch fe.Tag() {
			case "required":
				fields[fe.Field()] = "is required"
			case "oneof":
				fields[fe.Field()] = "must be one of: " + fe.Param()
			case "gt":
				fields[fe.Field()] = "must be greater than " + fe.Param()
			default:
				fields[fe.Field()] = "is invalid"
			}
		}
		return gin.H{"error": "validation error", "fields": fields}
	}
	return gin.H{"error": "invalid request format"}
}

// respondError maps a service error onto an HTTP status and body.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var vErr *apperrors.ValidationError
	switch {
	case errors.As(err, &vErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": "validation error", "fields": vErr.Fields})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrDuplicate), errors.Is(err, apperrors.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		logger.Error("Unhandled service error", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
