// Package terminal paints the payment methods as text cards.
package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/quantumauth-io/payment-info/internal/httpui"
	"github.com/quantumauth-io/payment-info/internal/payment"
)

var accents = map[payment.Color]color.Attribute{
	payment.ColorPrimary: color.FgBlue,
	payment.ColorSuccess: color.FgGreen,
	payment.ColorWarning: color.FgYellow,
	payment.ColorDanger:  color.FgRed,
	payment.ColorNeutral: color.FgHiBlack,
}

type Renderer struct {
	w      io.Writer
	bold   *color.Color
	accent map[payment.Color]*color.Color
}

// New returns a renderer that colors output only when w is a terminal and
// NO_COLOR is unset.
func New(w io.Writer) *Renderer {
	enabled := false
	if f, ok := w.(*os.File); ok {
		enabled = term.IsTerminal(int(f.Fd())) && !color.NoColor
	}
	return newRenderer(w, enabled)
}

func NewPlain(w io.Writer) *Renderer {
	return newRenderer(w, false)
}

func newRenderer(w io.Writer, enabled bool) *Renderer {
	r := &Renderer{
		w:      w,
		bold:   color.New(color.Bold),
		accent: make(map[payment.Color]*color.Color, len(accents)),
	}
	for name, attr := range accents {
		r.accent[name] = color.New(attr)
	}

	// per-instance toggles; the package-level color.NoColor is shared
	for _, c := range append([]*color.Color{r.bold}, values(r.accent)...) {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return r
}

// Render writes the page heading followed by one card per method, or the
// empty placeholder.
func (r *Renderer) Render(p httpui.Page) error {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n\n", r.bold.Sprint(p.Heading), p.Sub)
	fmt.Fprintf(&b, "%s\n%s\n", r.bold.Sprint(p.Section), strings.Repeat("─", len(p.Section)))

	if len(p.Cards) == 0 {
		fmt.Fprintf(&b, "  %s\n", p.Empty)
	}
	for _, c := range p.Cards {
		marker := "[copy]"
		if c.State == httpui.CopyCopied {
			marker = "[copied ✓]"
		}
		fmt.Fprintf(&b, "\n  %d. %s\n", c.Index, r.paint(c.Method.Color, r.bold.Sprint(c.Method.Name)))
		fmt.Fprintf(&b, "     %s %s %s\n", p.Label, c.Method.Address, r.paint(c.Button, marker))
	}

	_, err := io.WriteString(r.w, b.String())
	return err
}

func (r *Renderer) paint(c payment.Color, s string) string {
	if a, ok := r.accent[c]; ok {
		return a.Sprint(s)
	}
	return s
}

func values(m map[payment.Color]*color.Color) []*color.Color {
	out := make([]*color.Color, 0, len(m))
	for _, c := range m {
		out = append(out, c)
	}
	return out
}
