package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitBlock(t *testing.T) {
	out := fitBlock([]string{"hello world", "hi"}, 5, 3)
	require.Len(t, out, 3)
	assert.Equal(t, "hello", out[0])
	assert.Equal(t, "hi   ", out[1])
	assert.Equal(t, "     ", out[2])
}

func TestComposeRow(t *testing.T) {
	bg := "LLLLLLLLLL"
	central := "cccccccccc"

	assert.Equal(t, central, composeRow(bg, central, 0, 10, ""))
	assert.Equal(t, "LLLccccccc", composeRow(bg, central, 3, 10, ""))
	assert.Equal(t, "cccccccLLL", composeRow(bg, central, -3, 10, ""))
	assert.Equal(t, bg, composeRow(bg, central, 10, 10, ""))

	withShadow := ansi.Strip(composeRow(bg, central, 3, 10, "▒"))
	assert.Equal(t, "LL▒ccccccc", withShadow)
	withShadow = ansi.Strip(composeRow(bg, central, -3, 10, "▒"))
	assert.Equal(t, "ccccccc▒LL", withShadow)
}

func TestCompose_MissingBackgroundIsBlank(t *testing.T) {
	out := compose(nil, []string{"cccc", "cccc"}, 2, 4, "")
	assert.Equal(t, "  cc\n  cc", out)
}

func TestShadowGlyph(t *testing.T) {
	assert.Equal(t, "", shadowGlyph(0))
	assert.Equal(t, "░", shadowGlyph(0.2))
	assert.Equal(t, "▒", shadowGlyph(0.5))
	assert.Equal(t, "▓", shadowGlyph(1))
}

func TestOverlayCenter(t *testing.T) {
	base := strings.Join([]string{"..........", "..........", ".........."}, "\n")
	out := overlayCenter(base, "XX", 10)
	assert.Equal(t, "..........\n....XX....\n..........", ansi.Strip(out))
}

func TestDimmer(t *testing.T) {
	d := &Dimmer{}
	lines := []string{"\x1b[1mbold\x1b[0m"}
	assert.Equal(t, lines, d.Apply(lines), "detached layer leaves lines alone")

	d.AttachOverlay()
	d.SetOverlayAlpha(0)
	assert.False(t, d.Active())
	assert.Equal(t, lines, d.Apply(lines))

	d.SetOverlayAlpha(0.05)
	assert.True(t, d.Active())
	assert.Equal(t, "bold", ansi.Strip(d.Apply(lines)[0]))

	d.DetachOverlay()
	assert.False(t, d.Attached())
	assert.Zero(t, d.Alpha())
}
