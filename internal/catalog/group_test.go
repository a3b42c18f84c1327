package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/slovar-dev/slovar/internal/domain"
)

func TestGroupByLetter_Seed(t *testing.T) {
	groups := MustLoadCatalog().GroupByLetter()

	letters := make([]string, len(groups))
	for i, g := range groups {
		letters[i] = g.Letter
		assert.NotEmpty(t, g.Terms, "group %s", g.Letter)
	}
	assert.Equal(t, []string{"А", "М", "Р", "С", "Т", "Э"}, letters)
	assert.Equal(t, []int{5}, ids(groups[0].Terms))
}

func TestGroupByLetter_PreservesOrderWithinGroup(t *testing.T) {
	terms := []domain.Term{
		{ID: 1, Term: "Сонет", Letter: "С"},
		{ID: 2, Term: "Аллегория", Letter: "А"},
		{ID: 3, Term: "Сатира", Letter: "С"},
		{ID: 4, Term: "Силлабика", Letter: "С"},
	}

	groups := GroupByLetter(terms)

	assert.Len(t, groups, 2)
	assert.Equal(t, "А", groups[0].Letter)
	assert.Equal(t, "С", groups[1].Letter)
	assert.Equal(t, []int{1, 3, 4}, ids(groups[1].Terms))
}

func TestGroupByLetter_LettersOutsideAlphabetLast(t *testing.T) {
	terms := []domain.Term{
		{ID: 1, Term: "Haiku", Letter: "H"},
		{ID: 2, Term: "Ямб", Letter: "Я"},
		{ID: 3, Term: "Ёрник", Letter: "Ё"},
		{ID: 4, Term: "Анафора", Letter: "А"},
	}

	groups := GroupByLetter(terms)

	letters := make([]string, len(groups))
	listed := 0
	for i, g := range groups {
		letters[i] = g.Letter
		listed += len(g.Terms)
	}
	assert.Equal(t, []string{"А", "Я", "H", "Ё"}, letters)
	assert.Equal(t, len(terms), listed, "no term is dropped from the index")
}

func TestGroupByLetter_Empty(t *testing.T) {
	groups := GroupByLetter(nil)
	assert.NotNil(t, groups)
	assert.Empty(t, groups)
}
