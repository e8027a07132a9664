package constants

import "time"

const (
	AppName = "payment-info"

	// EnvPrefix scopes configuration overrides, e.g. PAYMENT_INFO_PAYMENT_ERC20.
	EnvPrefix = "PAYMENT_INFO"

	DefaultHost = "127.0.0.1"
	DefaultPort = "6138"

	// CopiedHighlight is how long a copy control stays in the "copied" state.
	CopiedHighlight = 2000 * time.Millisecond

	DefaultViewTTL       = 30 * time.Minute
	DefaultSweepInterval = time.Minute

	ShutdownTimeout = 5 * time.Second
)
