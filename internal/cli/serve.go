package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/idilsaglam/notes/internal/server"
	"github.com/idilsaglam/notes/internal/store"
)

func newServeCmd(ctx context.Context, s *session) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the notes REST API over the configured storage",
		Args:  usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") {
				addr = s.cfg.Serve.Addr
			}
			b, log, done, err := s.open(true)
			if err != nil {
				return err
			}
			defer done()

			if b.Mode == store.ModeRemote {
				log.Warn("serving on top of another remote service; set storage options and unset api.base_url to serve local notes")
			}
			srv := server.New(b, log, server.Options{CORSOrigins: s.cfg.Serve.CORSOrigins})
			return srv.Run(ctx, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":8080", "listen address (overrides serve.addr)")
	return cmd
}
