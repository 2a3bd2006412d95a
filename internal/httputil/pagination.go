package httputil

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apperrors "github.com/allisson/ciphershield/internal/errors"
)

// ParsePagination safely parses and validates offset and limit query parameters.
// It uses default values of 0 for offset and 50 for limit.
// The limit cannot exceed 100. Failures wrap ErrInvalidInput.
func ParsePagination(c *gin.Context) (offset, limit int, err error) {
	// Parse offset query parameter (default: 0)
	offset, err = strconv.Atoi(c.DefaultQuery("offset", "0"))
	if err != nil || offset < 0 {
		return 0, 0, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			"invalid offset parameter: must be a non-negative integer",
		)
	}

	// Parse limit query parameter (default: 50, max: 100)
	limit, err = strconv.Atoi(c.DefaultQuery("limit", "50"))
	if err != nil || limit < 1 || limit > 100 {
		return 0, 0, apperrors.Wrap(
			apperrors.ErrInvalidInput,
			"invalid limit parameter: must be between 1 and 100",
		)
	}

	return offset, limit, nil
}

// ParseIDParam parses a positive integer path parameter.
func ParseIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id < 1 {
		return 0, apperrors.Wrap(apperrors.ErrInvalidInput, "invalid "+name+" parameter: must be a positive integer")
	}
	return id, nil
}
