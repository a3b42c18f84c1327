package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slovar-dev/slovar/internal/domain"
)

func TestFilter_Scenarios(t *testing.T) {
	c := MustLoadCatalog()

	tests := []struct {
		name  string
		state domain.FilterState
		want  []int
	}{
		{"defaults return everything", domain.DefaultFilter(), []int{1, 2, 3, 4, 5, 6}},
		{"zero state returns everything", domain.FilterState{}, []int{1, 2, 3, 4, 5, 6}},
		{"search сонет", domain.DefaultFilter().WithSearch("сонет"), []int{2}},
		{"genre Тропы", domain.DefaultFilter().WithGenre("Тропы"), []int{1, 5}},
		{"letter Т", domain.DefaultFilter().WithLetter("Т"), []int{6}},
		{"search matches definition", domain.DefaultFilter().WithSearch("ямбом"), []int{2}},
		{"search ignores etymology", domain.DefaultFilter().WithSearch("sonetto"), []int{}},
		{"search ignores examples", domain.DefaultFilter().WithSearch("Шекспира"), []int{}},
		{"search and genre", domain.DefaultFilter().WithSearch("троп").WithGenre("Тропы"), []int{1}},
		{"genre and letter disjoint", domain.DefaultFilter().WithGenre("Драма").WithLetter("М"), []int{}},
		{"letter is exact", domain.DefaultFilter().WithLetter("т"), []int{}},
		{"no matches", domain.DefaultFilter().WithSearch("хайку"), []int{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.Filter(tt.state)
			require.NotNil(t, got)
			assert.Equal(t, tt.want, ids(got))

			// The pure function agrees with the cached path.
			assert.Equal(t, tt.want, ids(Filter(c.Terms(), tt.state)))
		})
	}
}

func TestFilter_CaseInsensitive(t *testing.T) {
	c := MustLoadCatalog()

	lower := c.Filter(domain.DefaultFilter().WithSearch("метафора"))
	upper := c.Filter(domain.DefaultFilter().WithSearch("МЕТАФОРА"))
	mixed := c.Filter(domain.DefaultFilter().WithSearch("МеТаФоРа"))

	assert.Equal(t, []int{1}, ids(lower))
	assert.Equal(t, ids(lower), ids(upper))
	assert.Equal(t, ids(lower), ids(mixed))
}

func TestFilter_SubsetOfCollection(t *testing.T) {
	c := MustLoadCatalog()
	all := c.Terms()

	searches := []string{"", "а", "о", "сонет", "xyz", "Троп"}
	genres := domain.GenreOptions()
	letters := domain.LetterOptions()

	for _, s := range searches {
		for _, g := range genres {
			for _, l := range letters {
				state := domain.FilterState{Search: s, Genre: g, Letter: l}
				got := Filter(all, state)

				// Every result is a collection member, in collection order.
				pos := -1
				for _, term := range got {
					idx := indexOf(all, term.ID)
					require.GreaterOrEqual(t, idx, 0, "fabricated term %d for %+v", term.ID, state)
					require.Greater(t, idx, pos, "order broken for %+v", state)
					pos = idx
				}
			}
		}
	}
}

func TestFilter_GenreSentinelComposesWithLetter(t *testing.T) {
	c := MustLoadCatalog()

	for _, l := range domain.Alphabet {
		withSentinel := c.Filter(domain.FilterState{Genre: domain.AllGenres, Letter: l})

		var letterOnly []int
		for _, term := range c.Terms() {
			if term.Letter == l {
				letterOnly = append(letterOnly, term.ID)
			}
		}
		if letterOnly == nil {
			letterOnly = []int{}
		}

		assert.Equal(t, letterOnly, ids(withSentinel), "letter %s", l)
	}
}

func TestFilter_EmptyInput(t *testing.T) {
	got := Filter(nil, domain.DefaultFilter())
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func indexOf(terms []domain.Term, id int) int {
	for i, t := range terms {
		if t.ID == id {
			return i
		}
	}
	return -1
}
