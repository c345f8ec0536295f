package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/craftnet/craftnet-be/internal/api/domain"
	"github.com/gin-gonic/gin"
)

// respondOK writes the success envelope used across the API.
func respondOK(c *gin.Context, status int, message string, data any) {
	c.JSON(status, gin.H{
		"success": true,
		"message": message,
		"data":    data,
	})
}

// respondError maps a lifecycle/ledger error kind to an HTTP status.
// Conflict and Duplicate are kept apart from bad input so clients can tell
// "already handled by someone else" from "fix your request". Anything
// unrecognized is a transient infrastructure failure.
func respondError(c *gin.Context, logger *slog.Logger, err error) {
	var status int
	var message string

	switch {
	case errors.Is(err, domain.ErrJobNotFound),
		errors.Is(err, domain.ErrProposalNotFound),
		errors.Is(err, domain.ErrMasterNotFound):
		status = http.StatusNotFound
		message = err.Error()

	case errors.Is(err, domain.ErrCategoryNotFound),
		errors.Is(err, domain.ErrCityNotFound):
		status = http.StatusBadRequest
		message = err.Error()

	case errors.Is(err, domain.ErrNotJobOwner):
		status = http.StatusForbidden
		message = err.Error()

	case errors.Is(err, domain.ErrJobConflict),
		errors.Is(err, domain.ErrJobNotPending),
		errors.Is(err, domain.ErrDuplicateProposal):
		status = http.StatusConflict
		message = err.Error()

	default:
		status = http.StatusInternalServerError
		message = "Internal server error"
		logger.Error("Request failed",
			slog.String("method", c.Request.Method),
			slog.String("path", c.Request.URL.Path),
			slog.Any("error", err),
		)
	}

	c.JSON(status, gin.H{
		"success": false,
		"message": message,
	})
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": message,
	})
}
