package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/radio-billing/backend/internal/domain/valueobject"
	"github.com/radio-billing/backend/internal/integration/entrypoint/dto"
)

// parseIDParam reads a positive integer path parameter.
func parseIDParam(ctx *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(ctx.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func parseDate(s string) (time.Time, error) {
	return time.Parse(dto.DateLayout, s)
}

// parseOptionalDate parses a YYYY-MM-DD value; nil and empty strings yield nil.
func parseOptionalDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := parseDate(*s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseMonthQuery reads the optional "month" query parameter in YYYY-MM form.
func parseMonthQuery(ctx *gin.Context) (*valueobject.YearMonth, error) {
	s := ctx.Query("month")
	if s == "" {
		return nil, nil
	}
	month, err := valueobject.ParseYearMonth(s)
	if err != nil {
		return nil, err
	}
	return &month, nil
}
