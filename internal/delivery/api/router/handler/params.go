package handler

import (
	"net/http"
	"strconv"

	"contacts/internal/delivery/api/middleware"
	"contacts/internal/usecase"

	"github.com/labstack/echo/v4"
)

// pathID parses a positive numeric path parameter.
func pathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "Invalid "+name)
	}

	return id, nil
}

// pathIDs parses several path parameters in order, stopping at the first bad one.
func pathIDs(c echo.Context, names ...string) ([]int64, error) {
	ids := make([]int64, 0, len(names))
	for _, name := range names {
		id, err := pathID(c, name)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// domainRequester is the authenticated caller writing through the domain API.
func domainRequester(c echo.Context) (usecase.Requester, error) {
	principal, ok := middleware.GetPrincipal(c)
	if !ok {
		return usecase.Requester{}, echo.NewHTTPError(http.StatusUnauthorized, "Missing caller identity")
	}

	return usecase.DPS(principal.Username), nil
}

// bindAndValidate binds the body into req. Validation failures are returned as is
// so the error handler can render them field by field.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Malformed request body")
	}

	return c.Validate(req)
}
