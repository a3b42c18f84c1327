package api

import (
	"context"
	"net/http"
	"slices"

	"github.com/danielgtaylor/huma/v2"

	"github.com/slovar-dev/slovar/internal/domain"
	"github.com/slovar-dev/slovar/internal/genre"
)

func (s *Server) registerReferenceRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listGenres",
		Method:      http.MethodGet,
		Path:        "/api/v1/genres",
		Summary:     "List genres",
		Description: "Returns the genre filter choices, sentinel first, with term counts",
		Tags:        []string{"Filters"},
	}, s.handleListGenres)

	huma.Register(s.api, huma.Operation{
		OperationID: "listLetters",
		Method:      http.MethodGet,
		Path:        "/api/v1/letters",
		Summary:     "List letters",
		Description: "Returns the letter filter choices, sentinel first, marking letters that have terms",
		Tags:        []string{"Filters"},
	}, s.handleListLetters)
}

// === DTOs ===

// GenreOptionResponse is one genre filter choice.
type GenreOptionResponse struct {
	Name  string `json:"name" doc:"Display name"`
	Slug  string `json:"slug" doc:"URL-safe slug accepted by the genre parameter"`
	All   bool   `json:"all,omitempty" doc:"True for the all-genres sentinel"`
	Count int    `json:"count" doc:"Terms in this genre"`
}

// ListGenresOutput wraps the genre choices for Huma.
type ListGenresOutput struct {
	Body struct {
		Genres []GenreOptionResponse `json:"genres" doc:"Genre choices in display order"`
	}
}

// LetterOptionResponse is one letter filter choice.
type LetterOptionResponse struct {
	Letter   string `json:"letter" doc:"Letter or the all-letters sentinel"`
	All      bool   `json:"all,omitempty" doc:"True for the sentinel"`
	HasTerms bool   `json:"has_terms" doc:"Whether any term is indexed under this letter"`
}

// ListLettersOutput wraps the letter choices for Huma.
type ListLettersOutput struct {
	Body struct {
		Letters []LetterOptionResponse `json:"letters" doc:"Letter choices in alphabet order"`
	}
}

// === Handlers ===

func (s *Server) handleListGenres(_ context.Context, _ *struct{}) (*ListGenresOutput, error) {
	counts := make(map[domain.Genre]int)
	for _, t := range s.catalog.Terms() {
		counts[t.Genre]++
	}

	opts := genre.Options()
	out := &ListGenresOutput{}
	out.Body.Genres = make([]GenreOptionResponse, len(opts))
	for i, o := range opts {
		count := counts[domain.Genre(o.Name)]
		if o.All {
			count = s.catalog.Len()
		}
		out.Body.Genres[i] = GenreOptionResponse{Name: o.Name, Slug: o.Slug, All: o.All, Count: count}
	}
	return out, nil
}

func (s *Server) handleListLetters(_ context.Context, _ *struct{}) (*ListLettersOutput, error) {
	present := s.catalog.Letters()

	opts := domain.LetterOptions()
	out := &ListLettersOutput{}
	out.Body.Letters = make([]LetterOptionResponse, len(opts))
	for i, l := range opts {
		all := l == domain.AllLetters
		out.Body.Letters[i] = LetterOptionResponse{
			Letter:   l,
			All:      all,
			HasTerms: all || slices.Contains(present, l),
		}
	}
	return out, nil
}
