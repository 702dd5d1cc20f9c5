package loggingmw

import (
	"log/slog"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Skotchmaster/cart_service/internal/logging"
)

// cartParams maps path params to the attribute names used on the completion line.
var cartParams = map[string]string{"userId": "user_id"}

func requestID(c echo.Context) string {
	if rid := c.Request().Header.Get(echo.HeaderXRequestID); rid != "" {
		return rid
	}
	return c.Response().Header().Get(echo.HeaderXRequestID)
}

func levelFor(status int, err error) slog.Level {
	switch {
	case err != nil || status >= 500:
		return slog.LevelError
	case status >= 400:
		return slog.LevelWarn
	default:
		return slog.LevelInfo
	}
}

// RequestLogger puts a request-scoped logger into the request context and
// writes one "request completed" line per request. Handler errors are
// rendered here so the logged status is the one sent to the client.
func RequestLogger(base *slog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			l := base.With(
				"method", c.Request().Method,
				"route", c.Path(),
				"remote_ip", c.RealIP(),
			)
			if rid := requestID(c); rid != "" {
				l = l.With("request_id", rid)
				c.Response().Header().Set(echo.HeaderXRequestID, rid)
			}

			ctx := logging.IntoContext(c.Request().Context(), l)
			c.SetRequest(c.Request().WithContext(ctx))

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			attrs := []any{
				"status", status,
				"duration_ms", time.Since(start).Milliseconds(),
				"bytes", c.Response().Size,
			}
			for param, attr := range cartParams {
				if v := c.Param(param); v != "" {
					attrs = append(attrs, attr, v)
				}
			}
			if err != nil {
				attrs = append(attrs, "error", err.Error())
			}

			l.Log(ctx, levelFor(status, err), "request completed", attrs...)
			return nil
		}
	}
}
