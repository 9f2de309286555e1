package api

import (
	"net/http"

	"campsite-reservation/internal/domain/reservation"
	"campsite-reservation/internal/handler/httperr"
	"campsite-reservation/internal/pkg/errs"

	"github.com/gin-gonic/gin"
)

type validationDetail struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// abortWithUseCaseError maps the kind carried by err onto an HTTP status.
func abortWithUseCaseError(c *gin.Context, err error) {
	switch errs.KindOf(err) {
	case errs.ErrValidation:
		var detail any
		if ve, ok := reservation.AsValidationError(err); ok {
			detail = validationDetail{Kind: string(ve.Kind), Message: ve.Message}
		}
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Validation failed", detail)
	case errs.ErrConflict:
		httperr.AbortWithError(c, http.StatusConflict, err, "The requested period is already occupied", nil)
	case errs.ErrNotFound:
		httperr.AbortWithError(c, http.StatusNotFound, err, "Reservation not found", nil)
	case errs.ErrNotAllowed:
		httperr.AbortWithError(c, http.StatusMethodNotAllowed, err, "Operation not allowed on a cancelled reservation", nil)
	case errs.ErrTransient:
		c.Header("Retry-After", "1")
		httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Service busy, please retry", nil)
	default:
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
	}
}
