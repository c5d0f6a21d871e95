// Package httperr maps domain errors onto HTTP status codes so handlers
// stay free of errors.Is chains.
package httperr

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domaincomment "github.com/alanyang/sprintboard/internal/domain/comment"
	domainepic "github.com/alanyang/sprintboard/internal/domain/epic"
	domainnotification "github.com/alanyang/sprintboard/internal/domain/notification"
	domainproject "github.com/alanyang/sprintboard/internal/domain/project"
	domainreview "github.com/alanyang/sprintboard/internal/domain/review"
	domainsprint "github.com/alanyang/sprintboard/internal/domain/sprint"
	domaintask "github.com/alanyang/sprintboard/internal/domain/task"
	domaintimelog "github.com/alanyang/sprintboard/internal/domain/timelog"
	domainuser "github.com/alanyang/sprintboard/internal/domain/user"
)

func status(err error) int {
	switch {
	case errors.Is(err, domaintask.ErrNotFound),
		errors.Is(err, domainproject.ErrNotFound),
		errors.Is(err, domainsprint.ErrNotFound),
		errors.Is(err, domainuser.ErrNotFound),
		errors.Is(err, domainreview.ErrNotFound),
		errors.Is(err, domaincomment.ErrNotFound),
		errors.Is(err, domainnotification.ErrNotFound),
		errors.Is(err, domainepic.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainuser.ErrPermissionDenied),
		errors.Is(err, domaintask.ErrNotReviewer),
		errors.Is(err, domaintask.ErrNotTester):
		return http.StatusForbidden
	case errors.Is(err, domaintask.ErrInvalidTransition),
		errors.Is(err, domaintask.ErrStatusConflict),
		errors.Is(err, domainsprint.ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, domaintask.ErrCircularDependency),
		errors.Is(err, domaintask.ErrSelfDependency),
		errors.Is(err, domaintask.ErrReviewGateClosed),
		errors.Is(err, domaintask.ErrTestingGateClosed):
		return http.StatusUnprocessableEntity
	case errors.Is(err, domaintask.ErrInvalidInput),
		errors.Is(err, domaintask.ErrInvalidStatus),
		errors.Is(err, domainuser.ErrInvalidRole),
		errors.Is(err, domaincomment.ErrInvalidContent),
		errors.Is(err, domaintimelog.ErrInvalidHours),
		errors.Is(err, domainepic.ErrInvalidStatus):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Abort writes the JSON error response for err.
func Abort(c *gin.Context, err error) {
	c.JSON(status(err), gin.H{"error": err.Error()})
}
