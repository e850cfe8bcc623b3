package middleware

import (
	"net/http"
	"strings"

	"github.com/parkwise/parking_cash_app/internal/utils"
	"github.com/gin-gonic/gin"
)

// untrackedPaths lists request paths that never produce analytics events.
var untrackedPaths = map[string]bool{
	"/health": true,
}

// AnalyticsMiddleware captures one event per successful authenticated request
// (check-ins, check-outs, drawer movements and so on), named after the route.
// Unauthenticated requests and error responses are not captured.
func AnalyticsMiddleware(analytics *utils.AnalyticsClient) gin.HandlerFunc {
	return func(c *gin.Context) {
		if !analytics.IsEnabled() || untrackedPaths[c.Request.URL.Path] || strings.HasPrefix(c.Request.URL.Path, "/swagger") {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}

		// The auth middleware has run by now; without a user there is no
		// distinct ID to attribute the event to.
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}

		eventName := eventNameFromRoute(c.FullPath())
		if eventName == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, param := range c.Params {
				params[param.Key] = param.Value
			}
			props["params"] = params
		}

		analytics.Capture(userID, eventName, props)
	}
}

// eventNameFromRoute turns a gin route template into an event name, e.g.
// "/api/v1/vehicle-registers/:id" -> "api_v1_vehicle-registers_:id".
// Unmatched routes (404s) have an empty template and yield "".
func eventNameFromRoute(routePath string) string {
	name := strings.TrimPrefix(routePath, "/")
	return strings.ReplaceAll(name, "/", "_")
}
