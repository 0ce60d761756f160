package main

import (
	"strings"

	"github.com/spf13/cobra"

	"kord/internal/api"
	"kord/internal/server"
)

func newServeCommand(ctx *commandContext) *cobra.Command {
	var bind string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the JSON API until interrupted",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			svc, err := api.NewService(cfg, logger)
			if err != nil {
				return err
			}
			opts := server.OptionsFromConfig(cfg, version)
			if trimmed := strings.TrimSpace(bind); trimmed != "" {
				opts.Bind = trimmed
			}
			srv, err := server.New(opts, svc, logger)
			if err != nil {
				return err
			}
			return srv.Run(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&bind, "bind", "", "Listen address (default from api.bind)")
	return cmd
}
