package domain

// FilterState is the transient query the view applies to the catalog.
// It is a value: every user action produces a new one.
type FilterState struct {
	Search string `json:"search"`
	Genre  string `json:"genre"`
	Letter string `json:"letter"`
}

// DefaultFilter returns an empty search with both sentinels selected.
func DefaultFilter() FilterState {
	return FilterState{
		Genre:  AllGenres,
		Letter: AllLetters,
	}
}

// WithSearch returns a copy of f with the search text replaced.
func (f FilterState) WithSearch(search string) FilterState {
	f.Search = search
	return f
}

// WithGenre returns a copy of f with the genre selection replaced.
func (f FilterState) WithGenre(genre string) FilterState {
	f.Genre = genre
	return f
}

// WithLetter returns a copy of f with the letter selection replaced.
func (f FilterState) WithLetter(letter string) FilterState {
	f.Letter = letter
	return f
}

// IsDefault reports whether f filters nothing out.
func (f FilterState) IsDefault() bool {
	return f.Search == "" && IsAllGenres(f.Genre) && IsAllLetters(f.Letter)
}
