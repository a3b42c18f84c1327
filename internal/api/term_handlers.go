package api

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/slovar-dev/slovar/internal/domain"
	"github.com/slovar-dev/slovar/internal/view"
)

func (s *Server) registerTermRoutes() {
	huma.Register(s.api, huma.Operation{
		OperationID: "listTerms",
		Method:      http.MethodGet,
		Path:        "/api/v1/terms",
		Summary:     "List terms",
		Description: "Returns the terms matching the search text, genre and letter selections, in catalog order",
		Tags:        []string{"Terms"},
	}, s.handleListTerms)

	huma.Register(s.api, huma.Operation{
		OperationID: "getTerm",
		Method:      http.MethodGet,
		Path:        "/api/v1/terms/{id}",
		Summary:     "Get term",
		Description: "Returns the detail view of a single term",
		Tags:        []string{"Terms"},
	}, s.handleGetTerm)

	huma.Register(s.api, huma.Operation{
		OperationID: "getIndex",
		Method:      http.MethodGet,
		Path:        "/api/v1/index",
		Summary:     "Alphabetical index",
		Description: "Returns every term grouped by first letter; empty letters are omitted",
		Tags:        []string{"Terms"},
	}, s.handleGetIndex)
}

// === DTOs ===

// FilterInput carries the list filters shared by list and search endpoints.
type FilterInput struct {
	Query  string `query:"q" maxLength:"200" doc:"Case-insensitive text matched against term name and definition"`
	Genre  string `query:"genre" doc:"Genre name or slug; omit or \"Все жанры\" for all"`
	Letter string `query:"letter" doc:"First letter; omit or \"Все\" for all"`
}

func (in FilterInput) state() domain.FilterState {
	return domain.FilterState{Search: in.Query, Genre: in.Genre, Letter: in.Letter}
}

// TermResponse is a term as rendered by the API.
type TermResponse struct {
	ID         int      `json:"id" doc:"Term ID"`
	Term       string   `json:"term" doc:"Display name"`
	Definition string   `json:"definition" doc:"Definition"`
	Etymology  string   `json:"etymology,omitempty" doc:"Word origin"`
	Genre      string   `json:"genre" doc:"Genre display name"`
	Category   string   `json:"category,omitempty" doc:"Sub-classification within the genre"`
	Examples   []string `json:"examples" doc:"Illustrative quotations"`
	Letter     string   `json:"letter" doc:"Index letter"`
}

// FilterResponse echoes the normalised filter that produced a list.
type FilterResponse struct {
	Search string `json:"search" doc:"Search text"`
	Genre  string `json:"genre" doc:"Selected genre or sentinel"`
	Letter string `json:"letter" doc:"Selected letter or sentinel"`
}

// ListTermsResponse is the LIST view.
type ListTermsResponse struct {
	Filter FilterResponse `json:"filter" doc:"Applied filter"`
	Count  int            `json:"count" doc:"Number of matching terms"`
	Empty  bool           `json:"empty" doc:"True when nothing matched"`
	Terms  []TermResponse `json:"terms" doc:"Matching terms in catalog order"`
}

// ListTermsOutput wraps the list response for Huma.
type ListTermsOutput struct {
	Body ListTermsResponse
}

// GetTermInput identifies a term.
type GetTermInput struct {
	ID int `path:"id" minimum:"1" doc:"Term ID"`
}

// TermDetailResponse is the DETAIL view.
type TermDetailResponse struct {
	Mode string       `json:"mode" doc:"Always \"detail\""`
	Term TermResponse `json:"term" doc:"The selected term"`
}

// TermDetailOutput wraps the detail response for Huma.
type TermDetailOutput struct {
	Body TermDetailResponse
}

// LetterGroupResponse is one section of the alphabetical index.
type LetterGroupResponse struct {
	Letter string         `json:"letter" doc:"Index letter"`
	Count  int            `json:"count" doc:"Terms under this letter"`
	Terms  []TermResponse `json:"terms" doc:"Terms in catalog order"`
}

// IndexResponse is the alphabetical tab.
type IndexResponse struct {
	Groups []LetterGroupResponse `json:"groups" doc:"Non-empty letter groups in alphabet order"`
}

// IndexOutput wraps the index response for Huma.
type IndexOutput struct {
	Body IndexResponse
}

// === Handlers ===

func (s *Server) handleListTerms(_ context.Context, input *FilterInput) (*ListTermsOutput, error) {
	sess := view.NewSession(s.catalog)
	if err := sess.Apply(input.state()); err != nil {
		return nil, statusError(err)
	}

	page := sess.Snapshot()
	return &ListTermsOutput{
		Body: ListTermsResponse{
			Filter: toFilterResponse(page.Filter),
			Count:  page.Count,
			Empty:  page.Empty,
			Terms:  toTermResponses(page.Results),
		},
	}, nil
}

func (s *Server) handleGetTerm(_ context.Context, input *GetTermInput) (*TermDetailOutput, error) {
	sess := view.NewSession(s.catalog)
	if err := sess.Select(input.ID); err != nil {
		return nil, statusError(err)
	}

	page := sess.Snapshot()
	return &TermDetailOutput{
		Body: TermDetailResponse{
			Mode: string(page.Mode),
			Term: toTermResponse(*page.Selected),
		},
	}, nil
}

func (s *Server) handleGetIndex(_ context.Context, _ *struct{}) (*IndexOutput, error) {
	sess := view.NewSession(s.catalog)
	if err := sess.SetTab(view.TabIndex); err != nil {
		return nil, statusError(err)
	}

	page := sess.Snapshot()
	groups := make([]LetterGroupResponse, len(page.Index))
	for i, g := range page.Index {
		groups[i] = LetterGroupResponse{
			Letter: g.Letter,
			Count:  len(g.Terms),
			Terms:  toTermResponses(g.Terms),
		}
	}
	return &IndexOutput{Body: IndexResponse{Groups: groups}}, nil
}

// === Converters ===

func toTermResponse(t domain.Term) TermResponse {
	examples := t.Examples
	if examples == nil {
		examples = []string{}
	}
	return TermResponse{
		ID:         t.ID,
		Term:       t.Term,
		Definition: t.Definition,
		Etymology:  t.Etymology,
		Genre:      string(t.Genre),
		Category:   t.Category,
		Examples:   examples,
		Letter:     t.Letter,
	}
}

func toTermResponses(terms []domain.Term) []TermResponse {
	out := make([]TermResponse, len(terms))
	for i, t := range terms {
		out[i] = toTermResponse(t)
	}
	return out
}

func toFilterResponse(f domain.FilterState) FilterResponse {
	return FilterResponse{Search: f.Search, Genre: f.Genre, Letter: f.Letter}
}
