package httpserver

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/estofados/outlet/internal/logging"
	"github.com/estofados/outlet/internal/models"
	"github.com/estofados/outlet/internal/service"
)

const userContextKey = "user"

func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Request().Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			l := base.With(
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"remote_ip", c.RealIP(),
			)
			if rid != "" {
				l = l.With("request_id", rid)
			}

			req := c.Request().WithContext(logging.IntoContext(c.Request().Context(), l))
			c.SetRequest(req)

			start := time.Now()
			err := next(c)
			dur := time.Since(start)
			status := c.Response().Status

			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
				status = c.Response().Status
			}

			switch {
			case err != nil || status >= 500:
				l.Error("request completed", "status", status, "duration_ms", dur.Milliseconds(), "error", errStr(err))
			case status >= 400:
				l.Warn("request completed", "status", status, "duration_ms", dur.Milliseconds())
			default:
				l.Info("request completed", "status", status, "duration_ms", dur.Milliseconds(), "bytes", c.Response().Size)
			}
			return nil
		}
	}
}

func errStr(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("%v", err)
}

// RequireUser resolves the Authorization: Bearer token into a user and
// stores it in the echo context. Missing, malformed, expired and orphaned
// tokens are all the same 401.
func RequireUser(auth *service.AuthService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || token == "" {
				return respondError(c, service.ErrUnauthenticated)
			}

			user, err := auth.ResolveToken(c.Request().Context(), token)
			if err != nil {
				return respondError(c, err)
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// RequireAdmin must run after RequireUser.
func RequireAdmin() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			user, err := currentUser(c)
			if err != nil {
				return respondError(c, err)
			}
			if !user.IsAdmin {
				return respondError(c, service.ErrForbidden)
			}
			return next(c)
		}
	}
}

func currentUser(c echo.Context) (*models.User, error) {
	user, ok := c.Get(userContextKey).(*models.User)
	if !ok || user == nil {
		return nil, service.ErrUnauthenticated
	}
	return user, nil
}
