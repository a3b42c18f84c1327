package commands

import (
	"github.com/spf13/cobra"

	"github.com/slovar-dev/slovar/internal/domain"
	"github.com/slovar-dev/slovar/internal/view"
)

func (a *app) listCmd() *cobra.Command {
	var (
		query  string
		genre  string
		letter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List terms matching the search text, genre and letter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := view.NewSession(a.catalog())
			if err := sess.Apply(domain.FilterState{Search: query, Genre: genre, Letter: letter}); err != nil {
				return err
			}
			page := sess.Snapshot()
			a.logger().Debug("Rendered list",
				"search", page.Filter.Search,
				"genre", page.Filter.Genre,
				"letter", page.Filter.Letter,
				"count", page.Count,
			)
			return renderList(cmd.OutOrStdout(), page)
		},
	}

	cmd.Flags().StringVarP(&query, "query", "q", "", "substring of the term name or definition")
	cmd.Flags().StringVarP(&genre, "genre", "g", domain.AllGenres, "genre name or slug")
	cmd.Flags().StringVarP(&letter, "letter", "l", domain.AllLetters, "first letter of the term")
	return cmd
}
