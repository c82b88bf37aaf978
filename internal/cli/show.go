package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/gotable/internal/render"
)

func newShowCmd(a *app) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print one page of records",
		Long:  "Loads the records, applies search, sort and paging, and prints the resulting page with its pagination footer.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			format, err := render.ParseFormat(output)
			if err != nil {
				return err
			}

			view, err := a.newView(cmd)
			if err != nil {
				return err
			}

			snap := view.Snapshot()
			a.logger.Debug().
				Int("total_items", snap.TotalItems).
				Int("total_pages", snap.TotalPages).
				Int("page", snap.CurrentPage).
				Msg("rendering page")

			if err = render.Write(cmd.OutOrStdout(), format, snap, view.Records().Columns()); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", string(render.FormatText), fmt.Sprintf("output format %v", render.Formats()))

	return cmd
}
