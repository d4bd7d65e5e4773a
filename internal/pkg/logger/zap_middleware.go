package logger

import (
	"fmt"
	"time"

	"github.com/clinicnet/clinicnet/internal/pkg/constants"
	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every request through logger and annotates the
// New Relic transaction created by nrecho, if any.
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			err := next(c)
			if err != nil {
				// let echo's error handler write the status before we read it
				c.Error(err)
			}
			latency := time.Since(start)

			subject := "anonymous"
			if id := c.Get(constants.ContextKeyUserID); id != nil {
				subject = fmt.Sprintf("%v", id)
			}
			requestID := c.Response().Header().Get(constants.HeaderRequestID)

			if txn != nil {
				txn.AddAttribute("subject", subject)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, c.Request().Method, c.Request().URL.Path, c.RealIP(),
				subject, requestID, c.Response().Status, latency, err)

			return nil
		}
	}
}
