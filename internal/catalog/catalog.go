// Package catalog owns the fixed term collection and answers filtered queries over it.
//
// The collection is loaded once from a Source and is read-only afterwards, so a
// *Catalog is safe for concurrent use without locking.
package catalog

import (
	"fmt"

	"github.com/slovar-dev/slovar/internal/domain"
	domainerrors "github.com/slovar-dev/slovar/internal/errors"
	"github.com/slovar-dev/slovar/internal/validation"
)

// Catalog is the loaded, immutable term collection.
type Catalog struct {
	terms  []domain.Term
	folded []foldedTerm
	byID   map[int]int
	source string
}

// foldedTerm caches the case-folded search fields of a term.
type foldedTerm struct {
	term       string
	definition string
}

// LoadCatalog loads the embedded seed collection.
func LoadCatalog() (*Catalog, error) {
	return Load(Seed{})
}

// MustLoadCatalog is LoadCatalog for callers that treat a broken seed as a build defect.
func MustLoadCatalog() *Catalog {
	c, err := LoadCatalog()
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded seed is invalid: %v", err))
	}
	return c
}

// Load reads the collection from src and validates every record.
//
// An empty letter is derived from the first letter of the term. A letter that
// disagrees with the term, a duplicate id or a failed field rule rejects the
// whole collection with a validation error listing every offending field.
func Load(src Source) (*Catalog, error) {
	raw, err := src.Terms()
	if err != nil {
		return nil, domainerrors.Wrapf(err, domainerrors.CodeInternal, "load terms from %s", src.Name())
	}

	v := validation.New()
	details := make(map[string]string)

	c := &Catalog{
		terms:  make([]domain.Term, 0, len(raw)),
		folded: make([]foldedTerm, 0, len(raw)),
		byID:   make(map[int]int, len(raw)),
		source: src.Name(),
	}

	for i, t := range raw {
		t = t.Clone()
		prefix := fmt.Sprintf("terms[%d]", i)

		derived := domain.LetterOf(t.Term)
		if t.Letter == "" {
			t.Letter = derived
		}

		if err := v.Validate(t); err != nil {
			collectDetails(details, prefix, err)
			continue
		}
		if t.Letter == "" {
			details[prefix+".letter"] = fmt.Sprintf("cannot derive a letter from %q", t.Term)
			continue
		}
		if t.Letter != derived {
			details[prefix+".letter"] = fmt.Sprintf("%q does not match first letter of %q", t.Letter, t.Term)
			continue
		}
		if prev, dup := c.byID[t.ID]; dup {
			details[prefix+".id"] = fmt.Sprintf("duplicate id %d (also terms[%d])", t.ID, prev)
			continue
		}

		c.byID[t.ID] = len(c.terms)
		c.terms = append(c.terms, t)
		c.folded = append(c.folded, foldedTerm{
			term:       fold(t.Term),
			definition: fold(t.Definition),
		})
	}

	if len(details) > 0 {
		return nil, domainerrors.ValidationWithDetails(
			fmt.Sprintf("invalid catalog from %s", src.Name()), details)
	}

	return c, nil
}

func collectDetails(details map[string]string, prefix string, err error) {
	var domainErr *domainerrors.Error
	if domainerrors.As(err, &domainErr) {
		if fields, ok := domainErr.Details.(map[string]string); ok {
			for field, msg := range fields {
				details[prefix+"."+field] = msg
			}
			return
		}
	}
	details[prefix] = err.Error()
}

// Source names where the collection was loaded from.
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of terms.
func (c *Catalog) Len() int {
	return len(c.terms)
}

// Terms returns a copy of the full collection in insertion order.
func (c *Catalog) Terms() []domain.Term {
	out := make([]domain.Term, len(c.terms))
	for i, t := range c.terms {
		out[i] = t.Clone()
	}
	return out
}

// Get looks up a term by id.
func (c *Catalog) Get(id int) (domain.Term, error) {
	idx, ok := c.byID[id]
	if !ok {
		return domain.Term{}, domainerrors.NotFoundf("term %d not found", id)
	}
	return c.terms[idx].Clone(), nil
}

// Contains reports whether id belongs to the collection.
func (c *Catalog) Contains(id int) bool {
	_, ok := c.byID[id]
	return ok
}

// Filter applies state to the collection. See the package-level Filter.
func (c *Catalog) Filter(state domain.FilterState) []domain.Term {
	m := newMatcher(state)
	out := make([]domain.Term, 0, len(c.terms))
	for i, t := range c.terms {
		if m.matchFolded(t, c.folded[i]) {
			out = append(out, t.Clone())
		}
	}
	return out
}

// GroupByLetter partitions the collection for the alphabetical index.
func (c *Catalog) GroupByLetter() []domain.LetterGroup {
	return GroupByLetter(c.Terms())
}

// Genres returns the distinct genres present, in enumeration order.
func (c *Catalog) Genres() []domain.Genre {
	present := make(map[domain.Genre]bool)
	for _, t := range c.terms {
		present[t.Genre] = true
	}
	out := make([]domain.Genre, 0, len(present))
	for _, g := range domain.Genres {
		if present[g] {
			out = append(out, g)
		}
	}
	return out
}

// Letters returns the distinct letters present, in index order.
func (c *Catalog) Letters() []string {
	groups := c.GroupByLetter()
	out := make([]string, len(groups))
	for i, g := range groups {
		out[i] = g.Letter
	}
	return out
}

// IDs returns every term id in collection order.
func (c *Catalog) IDs() []int {
	ids := make([]int, len(c.terms))
	for i, t := range c.terms {
		ids[i] = t.ID
	}
	return ids
}
