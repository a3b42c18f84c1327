package genre

import (
	"strings"

	"github.com/slovar-dev/slovar/internal/domain"
)

// CanonicalAliases maps slugified alternative spellings to a genre selection.
// Values are display names as stored on terms, or the all-genres sentinel.
var CanonicalAliases = map[string]string{
	// Sentinel
	"all":        domain.AllGenres,
	"any":        domain.AllGenres,
	"vse":        domain.AllGenres,
	"vse-zhanry": domain.AllGenres,

	// Тропы
	"tropes":  string(domain.GenreTropes),
	"trope":   string(domain.GenreTropes),
	"trop":    string(domain.GenreTropes),
	"tropy":   string(domain.GenreTropes),
	"imagery": string(domain.GenreTropes),

	// Лирика
	"lyric":   string(domain.GenreLyric),
	"lyrics":  string(domain.GenreLyric),
	"lyrical": string(domain.GenreLyric),
	"poetry":  string(domain.GenreLyric),
	"lirika":  string(domain.GenreLyric),

	// Фигуры речи
	"figures":           string(domain.GenreFigures),
	"figures-of-speech": string(domain.GenreFigures),
	"figure-of-speech":  string(domain.GenreFigures),
	"rhetoric":          string(domain.GenreFigures),
	"figury":            string(domain.GenreFigures),
	"figury-rechi":      string(domain.GenreFigures),

	// Эпос
	"epic":  string(domain.GenreEpic),
	"epos":  string(domain.GenreEpic),
	"prose": string(domain.GenreEpic),

	// Драма
	"drama":    string(domain.GenreDrama),
	"dramatic": string(domain.GenreDrama),
	"theatre":  string(domain.GenreDrama),
	"theater":  string(domain.GenreDrama),
}

// Resolve maps raw user input to a genre selection: a genre display name or
// domain.AllGenres. Empty input resolves to the sentinel.
// Returns false when nothing matches.
func Resolve(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" || domain.IsAllGenres(raw) {
		return domain.AllGenres, true
	}

	// Exact display name.
	if domain.Genre(raw).Valid() {
		return raw, true
	}

	slug := Slugify(raw)
	if slug == "" {
		return "", false
	}

	// Case-insensitive display name, compared by slug.
	for _, opt := range Options() {
		if opt.Slug == slug {
			return opt.Name, true
		}
	}

	if canonical, ok := CanonicalAliases[slug]; ok {
		return canonical, true
	}

	return "", false
}
