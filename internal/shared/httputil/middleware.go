package httputil

import (
	"github.com/labstack/echo/v4"

	"trackerMobility/internal/shared/auth"
	"trackerMobility/internal/shared/transport"
)

// ForwardCredentials copies the caller's bearer token and request id into
// the request context so upstream calls carry them. Authorization itself is
// enforced upstream.
func ForwardCredentials() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			ctx := auth.WithToken(req.Context(), auth.BearerToken(req.Header.Get(echo.HeaderAuthorization)))
			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			ctx = transport.WithRequestID(ctx, requestID)
			c.SetRequest(req.WithContext(ctx))
			return next(c)
		}
	}
}
