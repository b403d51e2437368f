package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inc-inventory/inventory-system/internal/api/middleware"
	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

// currentUser returns the user injected by the Auth middleware. A missing
// user means the route was registered without Auth, reported as 401.
func currentUser(c echo.Context) (*domain.User, error) {
	u, _ := c.Get(middleware.CtxUser).(*domain.User)
	if u == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}
	return u, nil
}

func currentActor(c echo.Context) (ports.Actor, error) {
	u, err := currentUser(c)
	if err != nil {
		return ports.Actor{}, err
	}
	return ports.Actor{ID: u.ID, Username: u.Username, Role: u.Role}, nil
}

// bindAndValidate binds the request and runs the registered validator.
func bindAndValidate(c echo.Context, req any) error {
	if err := c.Bind(req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}
	return nil
}
