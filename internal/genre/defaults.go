package genre

import "github.com/slovar-dev/slovar/internal/domain"

// Option is a selectable genre with its URL slug.
type Option struct {
	Name string `json:"name"`
	Slug string `json:"slug"`
	All  bool   `json:"all,omitempty"`
}

// Options returns the sidebar choices in display order, sentinel first.
func Options() []Option {
	opts := make([]Option, 0, len(domain.Genres)+1)
	opts = append(opts, Option{Name: domain.AllGenres, Slug: "all", All: true})
	for _, g := range domain.Genres {
		opts = append(opts, Option{Name: string(g), Slug: Slugify(string(g))})
	}
	return opts
}
