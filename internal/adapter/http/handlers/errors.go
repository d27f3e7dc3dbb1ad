package handlers

import (
	"context"
	"errors"
	"net/http"

	"vetcare/internal/adapter/http/dto/request"
	"vetcare/internal/domain/lifecycle"
	"vetcare/internal/domain/validation"
	"vetcare/internal/usecase"
	"vetcare/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInternal      = pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
	errMissingStatus = validation.Missing("status")
)

func invalidPayload(entity string, err error) *pkg.AppError {
	return pkg.NewDomainError("CONSTRAINT_VIOLATION", "Invalid "+entity+" payload", err, http.StatusBadRequest)
}

// mapDomainError covers the errors every entity shares. notFound is the
// message used for a missing entity.
func mapDomainError(err error, notFound string) *pkg.AppError {
	var verr *validation.Error
	var qerr *request.QueryError
	switch {
	case errors.As(err, &verr) && errors.Is(err, validation.ErrMissingField):
		return pkg.NewDomainError("MISSING_FIELD", verr.Error(), err, http.StatusBadRequest)
	case errors.As(err, &verr) && errors.Is(err, validation.ErrInvalidDateRange):
		return pkg.NewDomainError("INVALID_DATE_RANGE", verr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, lifecycle.ErrTransitionNotAllowed):
		return pkg.NewDomainError("TRANSITION_NOT_ALLOWED", err.Error(), err, http.StatusBadRequest)
	case errors.As(err, &qerr):
		return pkg.NewDomainError("CONSTRAINT_VIOLATION", qerr.Error(), err, http.StatusBadRequest)
	case errors.Is(err, validation.ErrConstraintViolation):
		return pkg.NewDomainError("CONSTRAINT_VIOLATION", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidID):
		return pkg.NewDomainError("CONSTRAINT_VIOLATION", "Invalid id", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", notFound, err, http.StatusNotFound)
	case errors.Is(err, context.DeadlineExceeded):
		return pkg.NewDomainError("TIMEOUT", "Request processing exceeded the allowed time limit", err, http.StatusGatewayTimeout)
	default:
		return pkg.NewDomainError(errInternal.Code, errInternal.Message, err, errInternal.HTTPStatus)
	}
}

// abort records the cause for the access log and writes the client body.
func abort(c *gin.Context, appErr *pkg.AppError) {
	if appErr.Err != nil {
		_ = c.Error(appErr.Err)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
