package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rulelang/rulelang/internal/config"
	"github.com/rulelang/rulelang/internal/transport"
)

func newServeCmd() *cobra.Command {
	var port int

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "run the HTTP evaluation server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.FromEnv().WithPort(port)

			log := logrus.New()
			log.SetFormatter(&logrus.JSONFormatter{})

			srv := transport.NewServer(cfg, log)

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			go func() {
				sigCh := make(chan os.Signal, 1)
				signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
				<-sigCh
				log.Info("shutting down")
				cancel()
			}()

			log.WithField("port", cfg.Port).Info("rulebook server listening")
			return srv.ListenAndServe(ctx)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "port to listen on (overrides PORT env var)")
	return cmd
}
