package catalog

import (
	"slices"

	"github.com/slovar-dev/slovar/internal/domain"
)

// GroupByLetter partitions terms by Letter for the alphabetical index.
//
// Relative order inside a group is preserved and empty groups are never emitted.
// Groups follow domain.Alphabet order; letters outside the alphabet come last,
// in order of first appearance.
//
// Terms under Ё, Й or a Latin letter are listed rather than dropped, so every
// term in the catalog stays reachable from the index even though the letter
// filter only offers the alphabet. Do not narrow this to domain.Alphabet.
func GroupByLetter(terms []domain.Term) []domain.LetterGroup {
	index := make(map[string]int)
	var groups []domain.LetterGroup

	for _, t := range terms {
		i, ok := index[t.Letter]
		if !ok {
			i = len(groups)
			index[t.Letter] = i
			groups = append(groups, domain.LetterGroup{Letter: t.Letter})
		}
		groups[i].Terms = append(groups[i].Terms, t)
	}

	// Stable sort keeps first-appearance order among letters outside the alphabet.
	slices.SortStableFunc(groups, func(a, b domain.LetterGroup) int {
		return alphabetRank(a.Letter) - alphabetRank(b.Letter)
	})

	if groups == nil {
		return []domain.LetterGroup{}
	}
	return groups
}

func alphabetRank(letter string) int {
	if i := domain.AlphabetIndex(letter); i >= 0 {
		return i
	}
	return len(domain.Alphabet)
}
