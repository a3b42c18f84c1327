package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	domainerrors "github.com/slovar-dev/slovar/internal/errors"
	"github.com/slovar-dev/slovar/internal/view"
)

func (a *app) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show the full entry of one term",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil || id <= 0 {
				return domainerrors.Validationf("invalid term id %q", args[0])
			}

			sess := view.NewSession(a.catalog())
			if err := sess.Select(id); err != nil {
				return err
			}
			t, ok := sess.Selected()
			if !ok {
				return domainerrors.NotFoundf("term %d not found", id)
			}
			return renderDetail(cmd.OutOrStdout(), t)
		},
	}
}
