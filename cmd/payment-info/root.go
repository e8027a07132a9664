package main

import (
	"fmt"

	"github.com/spf13/cobra"

	clientconfig "github.com/quantumauth-io/payment-info/cmd/payment-info/config"
	"github.com/quantumauth-io/payment-info/internal/constants"
	"github.com/quantumauth-io/payment-info/internal/httpui"
)

type rootOptions struct {
	configPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Show wallet addresses for accepting crypto payments",
		Long:          "payment-info lists the configured ERC20, BEP20 and TRC20 receiving addresses\nand copies them to the clipboard, from a local web page or the terminal.",
		Version:       fmt.Sprintf("%s (commit %s, built %s)", Version, Commit, BuildDate),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default searches ~/.config/payment-info, ~/config and .)")

	cmd.AddCommand(
		newServeCmd(opts),
		newListCmd(opts),
		newCopyCmd(opts),
	)
	return cmd
}

func (o *rootOptions) load() (*clientconfig.Config, error) {
	cfg, err := clientconfig.Load(o.configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

func pageTitle(cfg *clientconfig.Config) string {
	return httpui.Title(cfg.Name.First, cfg.Name.Last)
}
