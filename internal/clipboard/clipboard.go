// Package clipboard writes text to the system clipboard.
package clipboard

import (
	"context"
	"errors"
	"fmt"

	"github.com/atotto/clipboard"
)

// ErrUnsupported is returned when no clipboard backend is available on the host.
var ErrUnsupported = errors.New("clipboard unsupported on this host")

// Writer places text on a clipboard.
type Writer interface {
	WriteText(ctx context.Context, text string) error
}

// System implements Writer with github.com/atotto/clipboard
// (pbcopy, xclip/xsel/wl-copy or the Windows clipboard API).
type System struct{}

func NewSystem() System {
	return System{}
}

func (System) WriteText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("write clipboard: %w", err)
	}
	return nil
}

// Func adapts a plain function to Writer.
type Func func(ctx context.Context, text string) error

func (f Func) WriteText(ctx context.Context, text string) error {
	return f(ctx, text)
}

var (
	_ Writer = System{}
	_ Writer = Func(nil)
)
