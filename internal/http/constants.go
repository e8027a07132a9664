package http

// Generic HTTP / JSON strings
const (
	HTTPErrorForbiddenText     = "forbidden"
	HTTPErrorForbiddenHostText = "forbidden host"
	HTTPErrorBadIndexText      = "index must be a non-negative integer"
	HTTPErrorViewNotFoundText  = "view not found"
	HTTPErrorMethodNotFound    = "payment method not found"
)

// Common JSON keys
const (
	JSONKeyOK = "ok"
)

// Route paths
const (
	PathRoot      = "/"
	PathHealth    = "/healthz"
	PathMetrics   = "/metrics"
	PathStatic    = "/static"
	PathAPI       = "/api"
	PathMethods   = "/methods"
	PathViews     = "/views"
	PathView      = "/views/:id"
	PathViewCopy  = "/views/:id/copy/:index"
	PathViewClose = "/views/:id/close"
)

const corsMaxAgeSeconds = 600
