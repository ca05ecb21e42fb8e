package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/JPVargas2025/storefront/internal/core/domain"
)

// ctxSession rebuilds the session from the claims injected by the Auth
// middleware. Both username and role must be present; a token missing either
// is structurally valid but unusable.
func ctxSession(c echo.Context) (domain.Session, error) {
	username, _ := c.Get("username").(string)
	role, _ := c.Get("role").(string)
	if username == "" || role == "" {
		return domain.Session{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.Session{Username: username, Role: role}, nil
}
