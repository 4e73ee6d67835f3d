package middleware

import (
    "net/http"

    "github.com/labstack/echo/v4"

    "helpdesk/internal/model"
)

// RequireLevel returns a middleware that enforces the fixed role hierarchy
// admin > technician > user.  The request is admitted when the session
// role's rank is at least the rank of minRole.  An authenticated session
// with insufficient rank gets a 403 access-denied body rather than a login
// redirect; it assumes a previous middleware has extracted the role into
// the context under the key "role".
func RequireLevel(minRole string) echo.MiddlewareFunc {
    required := model.RoleLevel(minRole)
    return func(next echo.HandlerFunc) echo.HandlerFunc {
        return func(c echo.Context) error {
            v := c.Get("role")
            role, ok := v.(string)
            if !ok || model.RoleLevel(role) < required {
                return c.JSON(http.StatusForbidden, echo.Map{
                    "error":    "access denied",
                    "required": minRole,
                })
            }
            return next(c)
        }
    }
}
