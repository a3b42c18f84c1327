package commands

import (
	"github.com/spf13/cobra"

	"github.com/slovar-dev/slovar/internal/view"
)

func (a *app) indexCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "index",
		Short: "Print the alphabetical index",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := view.NewSession(a.catalog())
			if err := sess.SetTab(view.TabIndex); err != nil {
				return err
			}
			return renderIndex(cmd.OutOrStdout(), sess.Snapshot().Index)
		},
	}
}
