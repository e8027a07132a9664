package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/quantumauth-io/payment-info/internal/clipboard"
	"github.com/quantumauth-io/payment-info/internal/constants"
	"github.com/quantumauth-io/payment-info/internal/httpui"
	"github.com/quantumauth-io/payment-info/internal/payment"
	"github.com/quantumauth-io/payment-info/internal/terminal"
	"github.com/quantumauth-io/payment-info/internal/view"
)

func newCopyCmd(root *rootOptions) *cobra.Command {
	var noWait bool

	cmd := &cobra.Command{
		Use:   "copy <network|index>",
		Short: "Copy a wallet address to the clipboard",
		Long:  "Copy the address of one payment method, selected by network name (ERC20, BEP20, TRC20)\nor by its position in the list.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			return runCopy(cmd, cfg.Payment, pageTitle(cfg), args[0], clipboard.NewSystem(), constants.CopiedHighlight, noWait)
		},
	}

	cmd.Flags().BoolVar(&noWait, "no-wait", false, "exit right after copying instead of waiting for the confirmation to expire")
	return cmd
}

func runCopy(cmd *cobra.Command, addrs payment.Addresses, title, selector string, clip clipboard.Writer, highlight time.Duration, noWait bool) error {
	v := view.New("cli", addrs, view.Options{Clipboard: clip, Highlight: highlight})
	defer v.Close()

	methods := v.Methods()
	index, m, ok := payment.Lookup(methods, selector)
	if !ok {
		return fmt.Errorf("no configured payment method %q (available: %s)", selector, available(methods))
	}

	ctx := cmd.Context()
	v.Copy(ctx, m.Address, index)

	out := terminal.New(cmd.OutOrStdout())
	if err := out.Render(httpui.NewPage(title, v.ID(), methods, v.Copied())); err != nil {
		return err
	}
	if noWait || v.Copied() == nil {
		return nil
	}

	select {
	case <-ctx.Done():
		return nil
	case <-v.Cleared():
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return out.Render(httpui.NewPage(title, v.ID(), methods, v.Copied()))
}

func available(methods []payment.Method) string {
	if len(methods) == 0 {
		return "none"
	}
	names := make([]string, 0, len(methods))
	for _, m := range methods {
		names = append(names, m.Name)
	}
	return strings.Join(names, ", ")
}
