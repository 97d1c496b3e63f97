package render

import (
	"strings"
	"testing"

	"github.com/alecthomas/chroma/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeHTML_Lines(t *testing.T) {
	out, err := CodeHTML("<div>PLAYER</div>\n<p>x</p>\n", "html", "dark", nil)
	require.NoError(t, err)
	s := string(out)

	assert.True(t, strings.HasPrefix(s, `<div class="codeframe">`))
	assert.Contains(t, s, `id="L1"`)
	assert.Contains(t, s, `href="#L1"`)
	assert.Contains(t, s, `id="L2"`)
	assert.Contains(t, s, "PLAYER")
	// markup is escaped, never passed through
	assert.NotContains(t, s, "<div>PLAYER")
}

func TestCodeHTML_HighlightedLines(t *testing.T) {
	const code = "<div>\n  <p>one</p>\n</div>\n"
	plain, err := CodeHTML(code, "html", "dark", nil)
	require.NoError(t, err)
	marked, err := CodeHTML(code, "html", "dark", map[int]bool{2: true})
	require.NoError(t, err)

	assert.NotEqual(t, plain, marked)
	bg := styleFor("dark").Get(chroma.LineHighlight).Background.String()
	assert.Contains(t, string(marked), bg)
}

// github renders Error tokens light-on-dark; the background has to survive
// or the text disappears on the white page.
func TestCodeHTML_LightThemeErrorTokensVisible(t *testing.T) {
	errStyle := styleFor("light").Get(chroma.Error)
	require.True(t, errStyle.Background.IsSet())

	out, err := CodeHTML("<p>a & b < c</p>\n", "html", "light", nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), errStyle.Colour.String())
	assert.Contains(t, string(out), errStyle.Background.String())

	out, err = CodeHTML("<div class=\"x\" < y>z</div>\n", "html", "light", nil)
	require.NoError(t, err)
	if strings.Contains(string(out), errStyle.Colour.String()) {
		assert.Contains(t, string(out), errStyle.Background.String())
	}
}

func TestCodeHTML_UnknownLangAndTheme(t *testing.T) {
	out, err := CodeHTML("plain text", "no-such-lexer", "sepia", nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), "plain")
	assert.Contains(t, string(out), `href="#L1"`)
}

func TestCodeHTML_KeepsInnerBlankLines(t *testing.T) {
	out, err := CodeHTML("a\n\nb", "plaintext", "light", nil)
	require.NoError(t, err)
	assert.Contains(t, string(out), `id="L3"`)
}

func TestRanges(t *testing.T) {
	assert.Empty(t, Ranges(nil))
	assert.Equal(t, [][2]int{{2, 2}, {5, 7}, {9, 9}},
		Ranges(map[int]bool{7: true, 5: true, 6: true, 2: true, 9: true, 3: false, 0: true}))
}
