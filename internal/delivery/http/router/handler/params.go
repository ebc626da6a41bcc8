// Package handler contains the HTTP handlers for the application.
package handler

import (
	"strconv"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const (
	defaultListLimit = 100
	maxListLimit     = 100
)

// parsePKID reads the sequential id path parameter.
func parsePKID(c echo.Context, name string) (int64, error) {
	pkID, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		return 0, errors.Errorf("%s must be an integer", name)
	}

	return pkID, nil
}

// parseUUID reads the public identifier path parameter.
func parseUUID(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, errors.Errorf("%s must be a valid uuid", name)
	}

	return id, nil
}

// parsePagination reads the skip/limit query parameters. Missing values fall
// back to skip=0 limit=100; the limit is capped so one request cannot drain
// the table.
func parsePagination(c echo.Context) (int, int, error) {
	skip := 0
	if raw := c.QueryParam("skip"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return 0, 0, errors.New("skip must be a non-negative integer")
		}
		skip = parsed
	}

	limit := defaultListLimit
	if raw := c.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return 0, 0, errors.New("limit must be a non-negative integer")
		}
		limit = parsed
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	return skip, limit, nil
}
