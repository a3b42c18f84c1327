// Package view models the dictionary page state: the active filter, the LIST/DETAIL
// mode and the active tab.
package view

import (
	"strings"

	"github.com/slovar-dev/slovar/internal/catalog"
	"github.com/slovar-dev/slovar/internal/domain"
	domainerrors "github.com/slovar-dev/slovar/internal/errors"
	"github.com/slovar-dev/slovar/internal/genre"
	"github.com/slovar-dev/slovar/internal/validation"
)

// Mode is the display state of the main content area.
type Mode string

// Modes. ModeList is initial; Select enters ModeDetail and Deselect leaves it.
const (
	ModeList   Mode = "list"
	ModeDetail Mode = "detail"
)

// Tab is the active content tab. It is independent of Mode.
type Tab string

// Tabs.
const (
	TabDictionary Tab = "dictionary"
	TabIndex      Tab = "alphabetical"
)

// Page is an immutable rendering of the session at one point in time.
type Page struct {
	Mode     Mode                 `json:"mode"`
	Tab      Tab                  `json:"tab"`
	Filter   domain.FilterState   `json:"filter"`
	Results  []domain.Term        `json:"results"`
	Count    int                  `json:"count"`
	Empty    bool                 `json:"empty"`
	Selected *domain.Term         `json:"selected,omitempty"`
	Index    []domain.LetterGroup `json:"index,omitempty"`
}

// Session is the single-user page state over a catalog.
// It is not safe for concurrent use; each user action runs to completion.
type Session struct {
	catalog  *catalog.Catalog
	validate *validation.Validator
	filter   domain.FilterState
	selected *int
	tab      Tab
}

// NewSession starts in LIST mode on the dictionary tab with the default filter.
func NewSession(c *catalog.Catalog) *Session {
	return &Session{
		catalog:  c,
		validate: validation.New(),
		filter:   domain.DefaultFilter(),
		tab:      TabDictionary,
	}
}

// Filter returns the current filter state.
func (s *Session) Filter() domain.FilterState {
	return s.filter
}

// Mode reports LIST or DETAIL.
func (s *Session) Mode() Mode {
	if s.selected != nil {
		return ModeDetail
	}
	return ModeList
}

// Tab returns the active tab.
func (s *Session) Tab() Tab {
	return s.tab
}

// SetSearch replaces the search text.
func (s *Session) SetSearch(text string) {
	s.filter = s.filter.WithSearch(text)
}

// SetGenre replaces the genre selection. Display names, slugs and aliases are
// accepted; anything else is a validation error and leaves the filter unchanged.
func (s *Session) SetGenre(selection string) error {
	g, err := s.resolveGenre(selection)
	if err != nil {
		return err
	}
	s.filter = s.filter.WithGenre(g)
	return nil
}

// SetLetter replaces the letter selection. Input is upper-cased; an empty value
// selects the sentinel.
func (s *Session) SetLetter(selection string) error {
	l, err := s.resolveLetter(selection)
	if err != nil {
		return err
	}
	s.filter = s.filter.WithLetter(l)
	return nil
}

// Apply replaces the whole filter state in one step. Nothing changes on error.
func (s *Session) Apply(state domain.FilterState) error {
	g, err := s.resolveGenre(state.Genre)
	if err != nil {
		return err
	}
	l, err := s.resolveLetter(state.Letter)
	if err != nil {
		return err
	}
	s.filter = domain.FilterState{Search: state.Search, Genre: g, Letter: l}
	return nil
}

func (s *Session) resolveGenre(selection string) (string, error) {
	if g, ok := genre.Resolve(selection); ok {
		return g, nil
	}
	if err := s.validate.Var("genre", selection, "genre_filter"); err != nil {
		return "", err
	}
	return "", domainerrors.Validationf("unknown genre %q", selection)
}

func (s *Session) resolveLetter(selection string) (string, error) {
	l := NormalizeLetter(selection)
	if err := s.validate.Var("letter", l, "letter_filter"); err != nil {
		return "", err
	}
	return l, nil
}

// Reset restores the default filter. Mode and tab are untouched.
func (s *Session) Reset() {
	s.filter = domain.DefaultFilter()
}

// Select opens the detail view for a term: LIST -> DETAIL.
func (s *Session) Select(id int) error {
	if !s.catalog.Contains(id) {
		return domainerrors.NotFoundf("term %d not found", id)
	}
	s.selected = &id
	return nil
}

// Deselect returns to the list: DETAIL -> LIST.
func (s *Session) Deselect() {
	s.selected = nil
}

// Selected returns the open term, if any.
func (s *Session) Selected() (domain.Term, bool) {
	if s.selected == nil {
		return domain.Term{}, false
	}
	t, err := s.catalog.Get(*s.selected)
	if err != nil {
		return domain.Term{}, false
	}
	return t, true
}

// SetTab switches tabs without touching the selection.
func (s *Session) SetTab(tab Tab) error {
	switch tab {
	case TabDictionary, TabIndex:
		s.tab = tab
		return nil
	default:
		return domainerrors.Validationf("unknown tab %q", tab)
	}
}

// Snapshot recomputes the page from the catalog and the current state.
func (s *Session) Snapshot() Page {
	results := s.catalog.Filter(s.filter)
	p := Page{
		Mode:    s.Mode(),
		Tab:     s.tab,
		Filter:  s.filter,
		Results: results,
		Count:   len(results),
		Empty:   len(results) == 0,
	}
	if t, ok := s.Selected(); ok {
		p.Selected = &t
	}
	if s.tab == TabIndex {
		p.Index = s.catalog.GroupByLetter()
	}
	return p
}

// NormalizeLetter upper-cases a letter selection and maps empty input to the sentinel.
func NormalizeLetter(selection string) string {
	selection = strings.TrimSpace(selection)
	if domain.IsAllLetters(selection) || strings.EqualFold(selection, domain.AllLetters) {
		return domain.AllLetters
	}
	return strings.ToUpper(selection)
}
