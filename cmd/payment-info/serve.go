package main

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/quantumauth-io/quantum-go-utils/log"
	"github.com/spf13/cobra"

	clienthttp "github.com/quantumauth-io/payment-info/internal/http"
	"github.com/quantumauth-io/payment-info/internal/constants"
	"github.com/quantumauth-io/payment-info/internal/logging"
	"github.com/quantumauth-io/payment-info/internal/metrics"
	"github.com/quantumauth-io/payment-info/internal/payment"
	"github.com/quantumauth-io/payment-info/internal/ui"
	"github.com/quantumauth-io/payment-info/internal/view"
)

func newServeCmd(root *rootOptions) *cobra.Command {
	var host, port string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the payment page on a loopback address",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if host != "" {
				cfg.ClientSettings.LocalHost = host
			}
			if port != "" {
				cfg.ClientSettings.Port = port
			}

			log.Info(constants.AppName,
				"version", Version,
				"commit", Commit,
				"build_date", BuildDate,
			)

			ctx := cmd.Context()
			logger := logging.Default()

			m, err := metrics.New(prometheus.DefaultRegisterer)
			if err != nil {
				return err
			}

			views := view.NewRegistry(cfg.Payment, view.Options{
				Logger:  logger,
				Metrics: m,
			}, cfg.ClientSettings.ViewTTL)

			methods := payment.Methods(cfg.Payment)
			if len(methods) == 0 {
				log.Warn("no payment methods configured", "hint", "set Payment.erc20, Payment.bep20 or Payment.trc20")
			}

			handler, err := clienthttp.NewServer(views, clienthttp.Options{
				Title:            pageTitle(cfg),
				UIAllowedOrigins: cfg.ClientSettings.UIAllowedOrigins,
				Logger:           logger,
				Metrics:          m,
			})
			if err != nil {
				return err
			}

			sweepCtx, stopSweep := context.WithCancel(context.Background())
			sweepDone := make(chan struct{})
			go func() {
				defer close(sweepDone)
				views.Run(sweepCtx, cfg.ClientSettings.SweepInterval)
			}()

			svc := ui.NewUi(ui.Config{Addr: cfg.ClientSettings.Addr(), Handler: handler, Logger: logger})
			if err = svc.Start(); err != nil {
				stopSweep()
				<-sweepDone
				return err
			}
			log.Info("payment page ready", "url", svc.URL(), "methods", len(methods))

			<-ctx.Done()
			log.Info("shutdown signal received")

			shutdownCtx, cancel := context.WithTimeout(context.Background(), constants.ShutdownTimeout)
			defer cancel()

			if err = svc.Stop(shutdownCtx); err != nil {
				log.Error("HTTP server shutdown failed", "error", err)
			} else {
				log.Info("HTTP server gracefully stopped")
			}

			// closes every open view and its pending highlight reset
			stopSweep()
			<-sweepDone
			return nil
		},
	}

	cmd.Flags().StringVar(&host, "host", "", "listen host (overrides ClientSettings.LocalHost)")
	cmd.Flags().StringVar(&port, "port", "", "listen port (overrides ClientSettings.Port)")
	return cmd
}
