package domain

import "slices"

// Genre is one of the fixed categories a term is filed under.
type Genre string

// Genres shown in the sidebar, in display order.
const (
	GenreTropes  Genre = "Тропы"
	GenreLyric   Genre = "Лирика"
	GenreFigures Genre = "Фигуры речи"
	GenreEpic    Genre = "Эпос"
	GenreDrama   Genre = "Драма"
)

// AllGenres is the sentinel selection that disables genre filtering.
const AllGenres = "Все жанры"

// Genres lists every genre in display order.
var Genres = []Genre{GenreTropes, GenreLyric, GenreFigures, GenreEpic, GenreDrama}

// Valid reports whether g belongs to the enumeration.
func (g Genre) Valid() bool {
	return slices.Contains(Genres, g)
}

// String returns the display name.
func (g Genre) String() string {
	return string(g)
}

// IsAllGenres reports whether a genre selection disables filtering.
// An empty selection counts as the sentinel so a zero FilterState matches everything.
func IsAllGenres(selection string) bool {
	return selection == AllGenres || selection == ""
}

// GenreOptions returns the selectable genre values with the sentinel first.
func GenreOptions() []string {
	opts := make([]string, 0, len(Genres)+1)
	opts = append(opts, AllGenres)
	for _, g := range Genres {
		opts = append(opts, string(g))
	}
	return opts
}
