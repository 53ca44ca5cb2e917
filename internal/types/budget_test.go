package types

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPagesToLines(t *testing.T) {
	assert.Equal(t, 45, PagesToLines(1))
	assert.Equal(t, 90, PagesToLines(2))
	assert.Equal(t, 0, PagesToLines(0))
}

func TestTextLineCost_Short(t *testing.T) {
	assert.Equal(t, 1, TextLineCost("Built a service"))
}

func TestTextLineCost_Blank(t *testing.T) {
	assert.Equal(t, 0, TextLineCost(""))
	assert.Equal(t, 0, TextLineCost("   "))
}

func TestTextLineCost_Wrapping(t *testing.T) {
	// Exactly one full line
	assert.Equal(t, 1, TextLineCost(strings.Repeat("a", CharsPerLine)))
	// One character past a full line wraps
	assert.Equal(t, 2, TextLineCost(strings.Repeat("a", CharsPerLine+1)))
	assert.Equal(t, 3, TextLineCost(strings.Repeat("a", 2*CharsPerLine+1)))
}

func TestTextLineCost_Newlines(t *testing.T) {
	assert.Equal(t, 2, TextLineCost("first\nsecond"))
	// A blank line inside text still takes space
	assert.Equal(t, 3, TextLineCost("first\n\nthird"))
}
