package commands

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/slovar-dev/slovar/internal/domain"
	"github.com/slovar-dev/slovar/internal/search"
	"github.com/slovar-dev/slovar/internal/view"
)

const emptyResult = "Термины не найдены. Измените параметры поиска."

// renderList prints the dictionary tab in LIST mode.
func renderList(w io.Writer, p view.Page) error {
	ew := &errWriter{w: w}
	ew.printf("Найдено терминов: %d\n", p.Count)
	if p.Filter.Search != "" {
		ew.printf("Результаты поиска для: %q\n", p.Filter.Search)
	}
	if !p.Filter.IsDefault() {
		ew.printf("Жанр: %s · Буква: %s\n", orSentinel(p.Filter.Genre, domain.AllGenres), orSentinel(p.Filter.Letter, domain.AllLetters))
	}
	if p.Empty {
		ew.printf("\n%s\n", emptyResult)
		return ew.err
	}
	for _, t := range p.Results {
		ew.printf("\n[%d] %s · %s\n", t.ID, t.Term, t.Genre)
		ew.printf("    %s\n", t.Definition)
		if t.Etymology != "" {
			ew.printf("    %s\n", t.Etymology)
		}
	}
	return ew.err
}

// renderDetail prints the DETAIL view of one term.
func renderDetail(w io.Writer, t domain.Term) error {
	ew := &errWriter{w: w}
	ew.printf("%s\n", t.Term)
	badges := []string{t.Genre.String()}
	if t.Category != "" {
		badges = append(badges, t.Category)
	}
	ew.printf("%s\n", strings.Join(badges, " · "))

	ew.printf("\nОпределение\n  %s\n", t.Definition)
	if t.Etymology != "" {
		ew.printf("\nЭтимология\n  %s\n", t.Etymology)
	}
	if len(t.Examples) > 0 {
		ew.printf("\nПримеры\n")
		for _, ex := range t.Examples {
			ew.printf("  - %s\n", ex)
		}
	}
	return ew.err
}

// renderIndex prints the alphabetical index, one section per non-empty letter.
func renderIndex(w io.Writer, groups []domain.LetterGroup) error {
	ew := &errWriter{w: w}
	ew.printf("Алфавитный указатель\n")
	if len(groups) == 0 {
		ew.printf("\n%s\n", emptyResult)
		return ew.err
	}
	for _, g := range groups {
		ew.printf("\n%s\n", g.Letter)
		for _, t := range g.Terms {
			ew.printf("  [%d] %s\n", t.ID, t.Term)
		}
	}
	return ew.err
}

// renderSearch prints ranked hits as a table followed by genre facets.
func renderSearch(w io.Writer, res *search.Result) error {
	ew := &errWriter{w: w}
	ew.printf("Найдено терминов: %d\n", res.Total)
	if res.Query != "" {
		ew.printf("Результаты поиска для: %q\n", res.Query)
	}
	if len(res.Hits) == 0 {
		ew.printf("\n%s\n", emptyResult)
		return ew.err
	}
	if ew.err != nil {
		return ew.err
	}

	ew.printf("\n")
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, h := range res.Hits {
		fmt.Fprintf(tw, "[%d]\t%s\t%s\t%.3f\n", h.ID, h.Term, h.Genre, h.Score)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(res.Genres) > 0 {
		facets := make([]string, len(res.Genres))
		for i, f := range res.Genres {
			facets[i] = fmt.Sprintf("%s (%d)", f.Value, f.Count)
		}
		ew.printf("\nПо жанрам: %s\n", strings.Join(facets, ", "))
	}
	return ew.err
}

func orSentinel(selection, sentinel string) string {
	if selection == "" {
		return sentinel
	}
	return selection
}

// errWriter keeps the first write error so renderers can print unconditionally.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}
