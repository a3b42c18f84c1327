package commands

import (
	"strings"

	"github.com/samber/do/v2"
	"github.com/spf13/cobra"

	"github.com/slovar-dev/slovar/internal/di/providers"
	"github.com/slovar-dev/slovar/internal/domain"
	"github.com/slovar-dev/slovar/internal/search"
	"github.com/slovar-dev/slovar/internal/view"
)

func (a *app) searchCmd() *cobra.Command {
	var (
		genre  string
		letter string
		limit  int
	)

	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Ranked full-text search over the catalog",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := view.NewSession(a.catalog())
			state := domain.FilterState{Search: strings.Join(args, " "), Genre: genre, Letter: letter}
			if err := sess.Apply(state); err != nil {
				return err
			}
			f := sess.Filter()

			idx, err := do.Invoke[*providers.SearchIndexHandle](a.injector)
			if err != nil {
				return err
			}
			res, err := idx.Search(cmd.Context(), search.Params{
				Query:  f.Search,
				Genre:  f.Genre,
				Letter: f.Letter,
				Limit:  limit,
			})
			if err != nil {
				return err
			}
			return renderSearch(cmd.OutOrStdout(), res)
		},
	}

	cmd.Flags().StringVarP(&genre, "genre", "g", domain.AllGenres, "genre name or slug")
	cmd.Flags().StringVarP(&letter, "letter", "l", domain.AllLetters, "first letter of the term")
	cmd.Flags().IntVarP(&limit, "limit", "n", search.DefaultLimit, "maximum number of hits")
	return cmd
}
