package search

import (
	"context"
	"fmt"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/slovar-dev/slovar/internal/domain"
)

// DefaultLimit caps hits when Params.Limit is zero.
const DefaultLimit = 20

// Params configures a search query.
type Params struct {
	Query  string // User's search text; empty matches every term
	Genre  string // Genre display name or domain.AllGenres
	Letter string // Letter or domain.AllLetters
	Limit  int
}

// Result holds ranked hits.
type Result struct {
	Query  string       `json:"query"`
	Total  uint64       `json:"total"`
	TookMs int64        `json:"took_ms"`
	Hits   []Hit        `json:"hits"`
	Genres []FacetCount `json:"genres,omitempty"`
}

// Hit is a single ranked match.
type Hit struct {
	ID         int               `json:"id"`
	Score      float64           `json:"score"`
	Term       string            `json:"term"`
	Genre      string            `json:"genre"`
	Letter     string            `json:"letter"`
	Highlights map[string]string `json:"highlights,omitempty"`
}

// FacetCount represents a facet value and its count.
type FacetCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Search executes a ranked query.
func (s *SearchIndex) Search(ctx context.Context, params Params) (*Result, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	limit := params.Limit
	if limit <= 0 {
		limit = DefaultLimit
	}

	req := bleve.NewSearchRequestOptions(buildQuery(params), limit, 0, false)
	req.AddFacet("genre", bleve.NewFacetRequest("genre", len(domain.Genres)))
	req.Fields = []string{"term", "genre", "letter"}

	if strings.TrimSpace(params.Query) != "" {
		req.Highlight = bleve.NewHighlight()
		req.Highlight.AddField("term")
		req.Highlight.AddField("definition")
		req.Highlight.AddField("etymology")
	} else {
		// Without a text query every score is equal; keep collection order.
		req.SortBy([]string{"position"})
	}

	res, err := s.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("execute search: %w", err)
	}

	result := &Result{
		Query:  params.Query,
		Total:  res.Total,
		TookMs: res.Took.Milliseconds(),
		Hits:   make([]Hit, 0, len(res.Hits)),
	}

	for _, h := range res.Hits {
		id, err := TermID(h.ID)
		if err != nil {
			s.logger.Warn("skipping hit with foreign id", "doc_id", h.ID)
			continue
		}

		hit := Hit{ID: id, Score: h.Score}
		if v, ok := h.Fields["term"].(string); ok {
			hit.Term = v
		}
		if v, ok := h.Fields["genre"].(string); ok {
			hit.Genre = v
		}
		if v, ok := h.Fields["letter"].(string); ok {
			hit.Letter = v
		}

		if len(h.Fragments) > 0 {
			hit.Highlights = make(map[string]string, len(h.Fragments))
			for field, fragments := range h.Fragments {
				if len(fragments) > 0 {
					hit.Highlights[field] = fragments[0]
				}
			}
		}

		result.Hits = append(result.Hits, hit)
	}

	if facet, ok := res.Facets["genre"]; ok && facet.Terms != nil {
		for _, term := range facet.Terms.Terms() {
			result.Genres = append(result.Genres, FacetCount{Value: term.Term, Count: term.Count})
		}
	}

	return result, nil
}

// buildQuery constructs the Bleve query from params.
func buildQuery(params Params) query.Query {
	var queries []query.Query

	if text := strings.TrimSpace(params.Query); text != "" {
		termMatch := bleve.NewMatchQuery(text)
		termMatch.SetField("term")
		termMatch.SetBoost(3.0)

		definitionMatch := bleve.NewMatchQuery(text)
		definitionMatch.SetField("definition")
		definitionMatch.SetBoost(1.5)

		etymologyMatch := bleve.NewMatchQuery(text)
		etymologyMatch.SetField("etymology")

		categoryMatch := bleve.NewMatchQuery(text)
		categoryMatch.SetField("category")
		categoryMatch.SetBoost(0.8)

		examplesMatch := bleve.NewMatchQuery(text)
		examplesMatch.SetField("examples")
		examplesMatch.SetBoost(0.5)

		// Typo tolerance on the term name
		fuzzy := bleve.NewFuzzyQuery(strings.ToLower(text))
		fuzzy.SetField("term")
		fuzzy.SetFuzziness(1)
		fuzzy.SetBoost(0.8)

		queries = append(queries, bleve.NewDisjunctionQuery(
			termMatch, definitionMatch, etymologyMatch, categoryMatch, examplesMatch, fuzzy,
		))
	}

	if !domain.IsAllGenres(params.Genre) {
		gq := bleve.NewTermQuery(params.Genre)
		gq.SetField("genre")
		queries = append(queries, gq)
	}

	if !domain.IsAllLetters(params.Letter) {
		lq := bleve.NewTermQuery(params.Letter)
		lq.SetField("letter")
		queries = append(queries, lq)
	}

	switch len(queries) {
	case 0:
		return bleve.NewMatchAllQuery()
	case 1:
		return queries[0]
	default:
		return bleve.NewConjunctionQuery(queries...)
	}
}
