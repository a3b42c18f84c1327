package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/slovar-dev/slovar/internal/catalog"
	"github.com/slovar-dev/slovar/internal/domain"
	domainerrors "github.com/slovar-dev/slovar/internal/errors"
)

func newTestSession(t *testing.T) *Session {
	t.Helper()
	c, err := catalog.LoadCatalog()
	require.NoError(t, err)
	return NewSession(c)
}

func resultIDs(p Page) []int {
	out := make([]int, len(p.Results))
	for i, term := range p.Results {
		out[i] = term.ID
	}
	return out
}

func TestSession_InitialState(t *testing.T) {
	s := newTestSession(t)

	assert.Equal(t, ModeList, s.Mode())
	assert.Equal(t, TabDictionary, s.Tab())
	assert.Equal(t, domain.DefaultFilter(), s.Filter())

	p := s.Snapshot()
	assert.Equal(t, 6, p.Count)
	assert.False(t, p.Empty)
	assert.Nil(t, p.Selected)
	assert.Nil(t, p.Index)
}

func TestSession_SelectThenDeselect(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.Select(3))
	assert.Equal(t, ModeDetail, s.Mode())

	p := s.Snapshot()
	require.NotNil(t, p.Selected)
	assert.Equal(t, 3, p.Selected.ID)
	assert.Equal(t, ModeDetail, p.Mode)

	s.Deselect()
	assert.Equal(t, ModeList, s.Mode())

	_, ok := s.Selected()
	assert.False(t, ok)
	assert.Nil(t, s.Snapshot().Selected)
}

func TestSession_SelectUnknown(t *testing.T) {
	s := newTestSession(t)

	err := s.Select(42)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, ModeList, s.Mode())
}

func TestSession_TabIsOrthogonal(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.Select(2))

	require.NoError(t, s.SetTab(TabIndex))
	assert.Equal(t, ModeDetail, s.Mode(), "switching tabs keeps the selection")

	p := s.Snapshot()
	assert.Equal(t, TabIndex, p.Tab)
	assert.Len(t, p.Index, 6)

	s.Deselect()
	assert.Equal(t, TabIndex, s.Tab(), "deselecting keeps the tab")

	err := s.SetTab("sidebar")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.Equal(t, TabIndex, s.Tab())
}

func TestSession_Filters(t *testing.T) {
	s := newTestSession(t)

	s.SetSearch("сонет")
	assert.Equal(t, []int{2}, resultIDs(s.Snapshot()))

	s.Reset()
	require.NoError(t, s.SetGenre("Тропы"))
	assert.Equal(t, []int{1, 5}, resultIDs(s.Snapshot()))

	s.Reset()
	require.NoError(t, s.SetLetter("т"))
	assert.Equal(t, "Т", s.Filter().Letter)
	assert.Equal(t, []int{6}, resultIDs(s.Snapshot()))
}

func TestSession_GenreAliases(t *testing.T) {
	s := newTestSession(t)

	require.NoError(t, s.SetGenre("tropes"))
	assert.Equal(t, "Тропы", s.Filter().Genre)

	require.NoError(t, s.SetGenre(""))
	assert.Equal(t, domain.AllGenres, s.Filter().Genre)
}

func TestSession_InvalidSelectionsKeepState(t *testing.T) {
	s := newTestSession(t)
	require.NoError(t, s.SetGenre("Драма"))

	err := s.SetGenre("Поэма")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.Equal(t, "Драма", s.Filter().Genre)

	err = s.SetLetter("АБ")
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.Equal(t, domain.AllLetters, s.Filter().Letter)
}

func TestSession_Apply(t *testing.T) {
	s := newTestSession(t)

	err := s.Apply(domain.FilterState{Search: "троп", Genre: "tropy", Letter: "м"})
	require.NoError(t, err)
	assert.Equal(t, domain.FilterState{Search: "троп", Genre: "Тропы", Letter: "М"}, s.Filter())
	assert.Equal(t, []int{1}, resultIDs(s.Snapshot()))

	before := s.Filter()
	err = s.Apply(domain.FilterState{Search: "x", Genre: "Драма", Letter: "12"})
	assert.ErrorIs(t, err, domainerrors.ErrValidation)
	assert.Equal(t, before, s.Filter())
}

func TestSession_EmptyResultIsExplicit(t *testing.T) {
	s := newTestSession(t)
	s.SetSearch("несуществующий термин")

	p := s.Snapshot()
	assert.True(t, p.Empty)
	assert.Equal(t, 0, p.Count)
	assert.NotNil(t, p.Results)
}

func TestNormalizeLetter(t *testing.T) {
	assert.Equal(t, domain.AllLetters, NormalizeLetter(""))
	assert.Equal(t, domain.AllLetters, NormalizeLetter(" все "))
	assert.Equal(t, "Э", NormalizeLetter("э"))
}
