package bignum

import (
	"strconv"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/basicfont"
)

func TestRenderDimensions(t *testing.T) {
	r := NewWithFace(basicfont.Face7x13)

	out := r.Render("42", 4, 3)
	require.NotEmpty(t, out)

	lines := strings.Split(out, "\n")
	require.Len(t, lines, 3)
	for _, line := range lines {
		assert.Equal(t, 8, utf8.RuneCountInString(line), "line %q", line)
	}
	assert.True(t, strings.ContainsAny(out, "█▀▄"), "expected block characters in %q", out)
}

func TestRenderInvalidInput(t *testing.T) {
	r := NewWithFace(basicfont.Face7x13)

	assert.Empty(t, r.Render("", 4, 3))
	assert.Empty(t, r.Render("1", 0, 3))
	assert.Empty(t, r.Render("1", 4, 0))
	assert.Empty(t, NewWithFace(nil).Render("1", 4, 3))
}

func TestRenderIsCached(t *testing.T) {
	r := NewWithFace(basicfont.Face7x13)

	first := r.Render("7", 3, 2)
	assert.Len(t, r.cache, 1)
	assert.Equal(t, first, r.Render("7", 3, 2))
	assert.Len(t, r.cache, 1)

	r.Render("7", 5, 2)
	assert.Len(t, r.cache, 2)
}

func TestRenderCacheBoundedByDigits(t *testing.T) {
	r := NewWithFace(basicfont.Face7x13)

	for n := 0; n < 5000; n++ {
		require.NotEmpty(t, r.Render(strconv.Itoa(n), 3, 2))
	}
	assert.Len(t, r.cache, 10)
}

func TestRenderJoinsGlyphs(t *testing.T) {
	r := NewWithFace(basicfont.Face7x13)

	one := strings.Split(r.Render("1", 3, 2), "\n")
	two := strings.Split(r.Render("2", 3, 2), "\n")
	both := strings.Split(r.Render("12", 3, 2), "\n")

	require.Len(t, both, 2)
	for i := range both {
		assert.Equal(t, one[i]+two[i], both[i])
	}
}

func TestNewAlwaysHasFace(t *testing.T) {
	r := New()
	require.NotNil(t, r.face)
	assert.NotEmpty(t, r.Render("0", 3, 2))
}
