package cli

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sozercan/truthlens/internal/analyzer"
	"github.com/sozercan/truthlens/internal/render"
	"github.com/sozercan/truthlens/internal/server"
	"github.com/sozercan/truthlens/internal/session"
)

func newServerCommand(opts *rootOptions) *cobra.Command {
	var port string

	cmd := &cobra.Command{
		Use:   "server",
		Short: "Serve the analysis page and JSON API",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			if port != "" {
				cfg.Server.Port = port
			}

			backend, err := newBackend(cfg)
			if err != nil {
				return err
			}

			renderer, err := render.New()
			if err != nil {
				return fmt.Errorf("creating renderer: %w", err)
			}

			sessions := session.NewStore(cfg.Session.TTL)
			defer sessions.Close()

			srv, err := server.New(*cfg, analyzer.New(backend), renderer, sessions)
			if err != nil {
				return fmt.Errorf("creating server: %w", err)
			}
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return srv.Run(ctx)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "port to listen on (overrides server.port)")
	return cmd
}
