package cli

import (
	"github.com/spf13/cobra"

	"github.com/Alp4ka/gotable/internal/httpapi"
	"github.com/Alp4ka/gotable/internal/logging"
)

const defaultAddr = ":8080"

func newServeCmd(a *app) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve view snapshots over HTTP",
		Long: `Loads the records once and serves them read-only. Every request to
/api/v1/view starts from the configured view and applies its own query
parameters: search, keys, sort, page, per_page and neighbors.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			view, err := a.newView(cmd)
			if err != nil {
				return err
			}

			params := view.Parameters()
			srv := httpapi.New(view.Records(), &params, logging.Component(a.base, "http"))

			return srv.ListenAndServe(cmd.Context(), addr)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")

	return cmd
}
