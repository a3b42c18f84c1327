package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTerm_Clone(t *testing.T) {
	orig := Term{ID: 1, Term: "Сонет", Examples: []string{"a", "b"}}
	c := orig.Clone()
	c.Examples[0] = "changed"

	assert.Equal(t, "a", orig.Examples[0])
}
