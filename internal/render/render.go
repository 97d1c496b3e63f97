package render

import (
	"bytes"
	"html/template"
	"sort"

	"github.com/alecthomas/chroma/v2"
	chromahtml "github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

// Themes maps the page theme to a chroma style.
var Themes = map[string]string{
	"dark":  "dracula",
	"light": "github",
}

func lexerFor(lang, code string) chroma.Lexer {
	lexer := lexers.Get(lang)
	if lexer == nil {
		lexer = lexers.Analyse(code)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	return chroma.Coalesce(lexer)
}

func styleFor(theme string) *chroma.Style {
	name, ok := Themes[theme]
	if !ok {
		name = Themes["dark"]
	}
	if style := styles.Get(name); style != nil {
		return style
	}
	return styles.Fallback
}

// Ranges turns a line set into sorted, merged [from, to] ranges.
func Ranges(hl map[int]bool) [][2]int {
	lines := make([]int, 0, len(hl))
	for n, on := range hl {
		if on && n > 0 {
			lines = append(lines, n)
		}
	}
	sort.Ints(lines)

	var out [][2]int
	for _, n := range lines {
		if k := len(out); k > 0 && out[k-1][1]+1 == n {
			out[k-1][1] = n
			continue
		}
		out = append(out, [2]int{n, n})
	}
	return out
}

// CodeHTML highlights code with linkable line numbers (#L1, #L2, ...).
// Lines in hl get the style's line highlight.
func CodeHTML(code, lang, theme string, hl map[int]bool) (template.HTML, error) {
	formatter := chromahtml.New(
		chromahtml.WithClasses(false),
		chromahtml.WithLineNumbers(true),
		chromahtml.WithLinkableLineNumbers(true, "L"),
		chromahtml.HighlightLines(Ranges(hl)),
		chromahtml.TabWidth(4),
	)
	it, err := lexerFor(lang, code).Tokenise(nil, code)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	buf.WriteString(`<div class="codeframe">`)
	if err := formatter.Format(&buf, styleFor(theme), it); err != nil {
		return "", err
	}
	buf.WriteString(`</div>`)
	return template.HTML(buf.String()), nil
}
