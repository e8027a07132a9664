package view

import (
	"github.com/quantumauth-io/payment-info/internal/clipboard"
	"github.com/quantumauth-io/payment-info/internal/constants"
	"github.com/quantumauth-io/payment-info/internal/logging"
)

func withDefaults(opts Options) Options {
	if opts.Clipboard == nil {
		opts.Clipboard = clipboard.NewSystem()
	}
	if opts.Logger == nil {
		opts.Logger = logging.Default()
	}
	if opts.Highlight <= 0 {
		opts.Highlight = constants.CopiedHighlight
	}
	return opts
}
