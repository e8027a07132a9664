package httpui

import (
	"fmt"
	"strings"

	"github.com/quantumauth-io/payment-info/internal/payment"
)

const (
	PageHeading    = "Payment Information"
	PageSubtitle   = "Wallet addresses for payments"
	SectionHeading = "Payment Methods"
	EmptyText      = "No payment methods configured yet."
	AddressLabel   = "Wallet Address:"
)

type CopyState string

const (
	CopyIdle   CopyState = "idle"
	CopyCopied CopyState = "copied"
)

// Card is one payment method as painted on the page.
type Card struct {
	Index   int
	Method  payment.Method
	State   CopyState
	Button  payment.Color
	Glyph   string
	Tooltip string
}

// Page is the render model for the payment page.
type Page struct {
	Title   string
	ViewID  string
	Heading string
	Sub     string
	Section string
	Empty   string
	Label   string
	Cards   []Card
}

// Title builds the document title from the owner's display name.
func Title(first, last string) string {
	name := strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
	if name == "" {
		return "Payment Info"
	}
	return fmt.Sprintf("Payment Info - %s", name)
}

// NewPage maps the display list and highlight state to cards.
func NewPage(title, viewID string, methods []payment.Method, copied *int) Page {
	cards := make([]Card, 0, len(methods))
	for i, m := range methods {
		cards = append(cards, cardFor(i, m, copied != nil && *copied == i))
	}
	return Page{
		Title:   title,
		ViewID:  viewID,
		Heading: PageHeading,
		Sub:     PageSubtitle,
		Section: SectionHeading,
		Empty:   EmptyText,
		Label:   AddressLabel,
		Cards:   cards,
	}
}

func cardFor(i int, m payment.Method, copied bool) Card {
	c := Card{
		Index:   i,
		Method:  m,
		State:   CopyIdle,
		Button:  payment.ColorNeutral,
		Glyph:   "copy",
		Tooltip: "Copy address",
	}
	if copied {
		c.State = CopyCopied
		c.Button = payment.ColorSuccess
		c.Glyph = "check"
		c.Tooltip = "Copied"
	}
	return c
}
