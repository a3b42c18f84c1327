package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLetterOf(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"cyrillic", "Метафора", "М"},
		{"lowercase", "сонет", "С"},
		{"leading guillemet", "«Эпифора»", "Э"},
		{"latin", "haiku", "H"},
		{"empty", "", ""},
		{"no letters", "123 !", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LetterOf(tt.in))
		})
	}
}

func TestIsSingleLetter(t *testing.T) {
	assert.True(t, IsSingleLetter("Т"))
	assert.True(t, IsSingleLetter("a"))
	assert.False(t, IsSingleLetter(""))
	assert.False(t, IsSingleLetter("ТР"))
	assert.False(t, IsSingleLetter("1"))
}

func TestAlphabet(t *testing.T) {
	assert.Len(t, Alphabet, 28)
	assert.Equal(t, 0, AlphabetIndex("А"))
	assert.Equal(t, 27, AlphabetIndex("Я"))
	assert.Equal(t, -1, AlphabetIndex("Ё"))

	opts := LetterOptions()
	assert.Equal(t, AllLetters, opts[0])
	assert.Len(t, opts, len(Alphabet)+1)
}

func TestIsAllLetters(t *testing.T) {
	assert.True(t, IsAllLetters(AllLetters))
	assert.True(t, IsAllLetters(""))
	assert.False(t, IsAllLetters("А"))
}
