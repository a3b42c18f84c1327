package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/slovar-dev/slovar/internal/domain"
	domainerrors "github.com/slovar-dev/slovar/internal/errors"
	"github.com/slovar-dev/slovar/internal/search"
	"github.com/slovar-dev/slovar/internal/view"
)

func (s *Server) registerSearchRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "searchTerms",
		Method:      http.MethodGet,
		Path:        "/api/v1/search",
		Summary:     "Search terms",
		Description: "Ranked full-text search over names, definitions, etymology, categories and examples",
		Tags:        []string{"Search"},
	}, s.handleSearch)
}

// === DTOs ===

// SearchInput contains parameters for ranked search.
type SearchInput struct {
	Query  string `query:"q" maxLength:"200" doc:"Search text; empty lists every term"`
	Genre  string `query:"genre" doc:"Genre name or slug; omit for all"`
	Letter string `query:"letter" doc:"First letter; omit for all"`
	Limit  int    `query:"limit" minimum:"0" maximum:"100" doc:"Max hits (default 20)"`
}

// SearchHitResult is a single ranked match.
type SearchHitResult struct {
	ID         int               `json:"id" doc:"Term ID"`
	Score      float64           `json:"score" doc:"Search relevance score"`
	Term       string            `json:"term" doc:"Display name"`
	Genre      string            `json:"genre" doc:"Genre display name"`
	Letter     string            `json:"letter" doc:"Index letter"`
	Highlights map[string]string `json:"highlights,omitempty" doc:"Highlighted fragments by field"`
}

// FacetCount represents a facet value and its count.
type FacetCount struct {
	Value string `json:"value" doc:"Facet value"`
	Count int    `json:"count" doc:"Number of matches"`
}

// SearchResponse contains ranked results.
type SearchResponse struct {
	Query  string            `json:"query" doc:"Original search query"`
	Filter FilterResponse    `json:"filter" doc:"Applied genre and letter filter"`
	Total  uint64            `json:"total" doc:"Total matches"`
	TookMs int64             `json:"took_ms" doc:"Search duration in milliseconds"`
	Hits   []SearchHitResult `json:"hits" doc:"Ranked results"`
	Genres []FacetCount      `json:"genres,omitempty" doc:"Matches per genre"`
}

// SearchOutput wraps the search response for Huma.
type SearchOutput struct {
	Body SearchResponse
}

// === Handlers ===

func (s *Server) handleSearch(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	if s.search == nil {
		return nil, statusError(domainerrors.Internal("search index is not available"))
	}

	// Reuse the session's normalisation so slugs and lower-case letters work here too.
	sess := view.NewSession(s.catalog)
	if err := sess.Apply(domain.FilterState{Search: input.Query, Genre: input.Genre, Letter: input.Letter}); err != nil {
		return nil, statusError(err)
	}
	f := sess.Filter()

	res, err := s.search.Search(ctx, search.Params{
		Query:  f.Search,
		Genre:  f.Genre,
		Letter: f.Letter,
		Limit:  input.Limit,
	})
	if err != nil {
		s.logger.Error("Search failed", "error", err, "query", input.Query)
		return nil, statusError(domainerrors.Wrap(err, domainerrors.CodeInternal, "search failed"))
	}

	hits := make([]SearchHitResult, len(res.Hits))
	for i, h := range res.Hits {
		hits[i] = SearchHitResult{
			ID:         h.ID,
			Score:      h.Score,
			Term:       h.Term,
			Genre:      h.Genre,
			Letter:     h.Letter,
			Highlights: h.Highlights,
		}
	}

	var genres []FacetCount
	for _, g := range res.Genres {
		genres = append(genres, FacetCount{Value: g.Value, Count: g.Count})
	}

	return &SearchOutput{
		Body: SearchResponse{
			Query:  res.Query,
			Filter: toFilterResponse(f),
			Total:  res.Total,
			TookMs: res.TookMs,
			Hits:   hits,
			Genres: genres,
		},
	}, nil
}
