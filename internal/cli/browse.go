package cli

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/Alp4ka/gotable/internal/logging"
	"github.com/Alp4ka/gotable/internal/tui"
)

var ErrNotTerminal = errors.New("browse needs an interactive terminal; use 'gotable show' instead")

func newBrowseCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "browse",
		Short: "Page through records interactively",
		Long:  "Opens a terminal table over the records. Type / to search, tab to pick a column, s to sort it, and left/right to change pages.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdin) || !isTerminal(os.Stdout) {
				return ErrNotTerminal
			}

			view, err := a.newView(cmd)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), view, logging.Component(a.base, "tui"), cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
