package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	bCtx "github.com/remixer-xyz/goapi/base/ctx"
	"github.com/remixer-xyz/goapi/base/log"
)

// AddContext attaches a request-scoped Ctx carrying a request id
func AddContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := bCtx.WithValue(bCtx.Background(), "requestId", uuid.NewString())
			c.Set("ctx", ctx)
			return next(c)
		}
	}
}

// ResponseLogger logs one line per request once the response is written
func ResponseLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			ctx := c.Get("ctx").(bCtx.Ctx)
			fields := log.Fields{
				"method":    c.Request().Method,
				"path":      c.Request().URL.Path,
				"status":    c.Response().Status,
				"elapsedMs": time.Since(start).Milliseconds(),
			}
			if err != nil {
				fields["err"] = err
			}
			ctx.WithFields(fields).Info("request handled")
			return err
		}
	}
}
