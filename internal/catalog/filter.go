package catalog

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/slovar-dev/slovar/internal/domain"
)

// Filter returns the terms that satisfy every clause of state, in collection order:
//
//   - search: case-insensitive substring of Term or Definition; empty matches all
//   - genre: the all-genres sentinel, or exact equality with Term.Genre
//   - letter: the all-letters sentinel, or exact equality with Term.Letter
//
// The result is never nil; zero matches yield an empty slice.
func Filter(terms []domain.Term, state domain.FilterState) []domain.Term {
	m := newMatcher(state)
	out := make([]domain.Term, 0, len(terms))
	for _, t := range terms {
		if m.match(t) {
			out = append(out, t)
		}
	}
	return out
}

// matcher is a FilterState with its search text folded once.
type matcher struct {
	search string
	state  domain.FilterState
}

func newMatcher(state domain.FilterState) matcher {
	return matcher{search: fold(state.Search), state: state}
}

func (m matcher) match(t domain.Term) bool {
	return m.matchFolded(t, foldedTerm{term: fold(t.Term), definition: fold(t.Definition)})
}

func (m matcher) matchFolded(t domain.Term, f foldedTerm) bool {
	return m.matchesSearch(f) && m.matchesGenre(t) && m.matchesLetter(t)
}

func (m matcher) matchesSearch(f foldedTerm) bool {
	if m.search == "" {
		return true
	}
	return strings.Contains(f.term, m.search) || strings.Contains(f.definition, m.search)
}

func (m matcher) matchesGenre(t domain.Term) bool {
	return domain.IsAllGenres(m.state.Genre) || string(t.Genre) == m.state.Genre
}

func (m matcher) matchesLetter(t domain.Term) bool {
	return domain.IsAllLetters(m.state.Letter) || t.Letter == m.state.Letter
}

// fold normalises s for case-insensitive comparison.
// A fresh Caser per call keeps fold safe for concurrent use.
func fold(s string) string {
	if s == "" {
		return ""
	}
	return cases.Fold().String(norm.NFC.String(s))
}
