// Package search provides ranked full-text search over the term catalog using Bleve.
// It complements the exact substring filter with stemming, fuzzy matching,
// highlighting and genre facets.
package search

import (
	"strconv"
	"strings"

	"github.com/slovar-dev/slovar/internal/domain"
)

// TermDocument is the indexed form of a domain.Term.
type TermDocument struct {
	ID         string `json:"id"`
	Term       string `json:"term"`
	Definition string `json:"definition"`
	Etymology  string `json:"etymology,omitempty"`
	Category   string `json:"category,omitempty"`
	Examples   string `json:"examples,omitempty"`
	Genre      string `json:"genre"`
	Letter     string `json:"letter"`
	Position   int    `json:"position"` // Index in the catalog; orders unranked results
}

// ToMap converts the document to a map keyed by the index field names.
func (d *TermDocument) ToMap() map[string]any {
	m := map[string]any{
		"id":         d.ID,
		"term":       d.Term,
		"definition": d.Definition,
		"genre":      d.Genre,
		"letter":     d.Letter,
		"position":   float64(d.Position),
	}

	if d.Etymology != "" {
		m["etymology"] = d.Etymology
	}
	if d.Category != "" {
		m["category"] = d.Category
	}
	if d.Examples != "" {
		m["examples"] = d.Examples
	}

	return m
}

// TermToDocument converts a domain Term at catalog position pos to its index document.
func TermToDocument(t domain.Term, pos int) *TermDocument {
	return &TermDocument{
		ID:         DocID(t.ID),
		Term:       t.Term,
		Definition: t.Definition,
		Etymology:  t.Etymology,
		Category:   t.Category,
		Examples:   strings.Join(t.Examples, "\n"),
		Genre:      string(t.Genre),
		Letter:     t.Letter,
		Position:   pos,
	}
}

// DocID is the index document id of a term id.
func DocID(id int) string {
	return strconv.Itoa(id)
}

// TermID parses a document id back to a term id.
func TermID(docID string) (int, error) {
	return strconv.Atoi(docID)
}
