package domain

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// AllLetters is the sentinel selection that disables letter filtering.
const AllLetters = "Все"

// Alphabet is the letter index offered for filtering, in collation order.
// Letters that never start a word (Ъ, Ы, Ь) and the rare Ё and Й are omitted.
var Alphabet = []string{
	"А", "Б", "В", "Г", "Д", "Е", "Ж", "З", "И", "К", "Л", "М", "Н", "О",
	"П", "Р", "С", "Т", "У", "Ф", "Х", "Ц", "Ч", "Ш", "Щ", "Э", "Ю", "Я",
}

// IsAllLetters reports whether a letter selection disables filtering.
// An empty selection counts as the sentinel.
func IsAllLetters(selection string) bool {
	return selection == AllLetters || selection == ""
}

// LetterOptions returns the selectable letter values with the sentinel first.
func LetterOptions() []string {
	return append([]string{AllLetters}, Alphabet...)
}

// LetterOf derives the grouping letter of a display name: its first letter, upper-cased.
// Leading punctuation such as guillemets is skipped. Returns "" when s has no letters.
func LetterOf(s string) string {
	s = strings.TrimLeftFunc(s, func(r rune) bool { return !unicode.IsLetter(r) })
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return ""
	}
	return string(unicode.ToUpper(r))
}

// IsSingleLetter reports whether s is exactly one letter rune.
func IsSingleLetter(s string) bool {
	r, size := utf8.DecodeRuneInString(s)
	return size > 0 && size == len(s) && unicode.IsLetter(r)
}

// AlphabetIndex returns the position of letter in Alphabet, or -1.
func AlphabetIndex(letter string) int {
	return slices.Index(Alphabet, letter)
}
