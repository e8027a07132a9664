package main

import (
	"github.com/spf13/cobra"

	"github.com/quantumauth-io/payment-info/internal/httpui"
	"github.com/quantumauth-io/payment-info/internal/payment"
	"github.com/quantumauth-io/payment-info/internal/terminal"
)

func newListCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Print the configured payment methods",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			page := httpui.NewPage(pageTitle(cfg), "", payment.Methods(cfg.Payment), nil)
			return terminal.New(cmd.OutOrStdout()).Render(page)
		},
	}
}
