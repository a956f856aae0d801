package newrelic

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// EchoMiddleware records one web transaction per request and puts it on the
// request context. With a nil app it does nothing.
func EchoMiddleware(app *newrelic.Application) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		if app == nil {
			return next
		}
		return func(c echo.Context) error {
			req := c.Request()
			txn := app.StartTransaction(req.Method + " " + c.Path())
			defer txn.End()

			txn.SetWebRequestHTTP(req)
			c.Response().Writer = txn.SetWebResponse(c.Response().Writer)
			c.SetRequest(req.WithContext(newrelic.NewContext(req.Context(), txn)))

			err := next(c)
			if err != nil || c.Response().Status >= http.StatusInternalServerError {
				txn.NoticeError(errorFor(c, err))
			}
			return err
		}
	}
}

func errorFor(c echo.Context, err error) error {
	if err != nil {
		return err
	}
	return echo.NewHTTPError(c.Response().Status)
}

// WithSegment times fn as a segment of the transaction on ctx, if any
func WithSegment(ctx context.Context, name string, fn func() error) error {
	txn := newrelic.FromContext(ctx)
	if txn == nil {
		return fn()
	}
	segment := txn.StartSegment(name)
	defer segment.End()
	return fn()
}
