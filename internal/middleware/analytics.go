package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// EventTracker receives one event per successful authenticated request.
type EventTracker interface {
	Enabled() bool
	Capture(distinctID, event string, properties map[string]any)
}

// routesToSkip are not tracked: health checks, and the calculation
// endpoints the invoice form calls on every edit.
var routesToSkip = map[string]bool{
	"/health":                          true,
	"/api/v1/invoices/preview":         true,
	"/api/v1/invoices/items/recompute": true,
}

// AnalyticsMiddleware tracks API usage once the handler has run.
func AnalyticsMiddleware(tracker EventTracker) gin.HandlerFunc {
	return func(c *gin.Context) {
		if tracker == nil || !tracker.Enabled() || routesToSkip[c.FullPath()] {
			c.Next()
			return
		}

		c.Next()

		if len(c.Errors) > 0 || c.Writer.Status() >= http.StatusBadRequest {
			return
		}
		userID, ok := GetUserIDFromContext(c)
		if !ok {
			return
		}
		event := EventName(c.Request.Method, c.FullPath())
		if event == "" {
			return
		}

		props := map[string]any{
			"method":      c.Request.Method,
			"route":       c.FullPath(),
			"status_code": c.Writer.Status(),
		}
		if len(c.Params) > 0 {
			params := make(map[string]string, len(c.Params))
			for _, p := range c.Params {
				params[p.Key] = p.Value
			}
			props["params"] = params
		}
		tracker.Capture(userID, event, props)
	}
}

// EventName derives an event name from a route template:
// POST /api/v1/invoices/:invoiceID/export -> "post_invoices_invoiceID_export".
func EventName(method, route string) string {
	route = strings.TrimPrefix(route, "/api/v1")
	route = strings.Trim(route, "/")
	if route == "" {
		return ""
	}
	route = strings.ReplaceAll(route, ":", "")
	return strings.ToLower(method) + "_" + strings.ReplaceAll(route, "/", "_")
}
