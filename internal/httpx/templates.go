package httpx

import (
	"html/template"
)

var tmplFuncs = template.FuncMap{
	"other": func(theme string) string {
		if theme == "light" {
			return "dark"
		}
		return "light"
	},
}

// LoadTemplates parses the embedded page templates. It panics on a broken
// template, which can only happen at build time.
func LoadTemplates() (page, source *template.Template) {
	page = template.Must(template.New("testpage").Parse(testPageHTML))
	source = template.Must(template.New("source").Funcs(tmplFuncs).Parse(sourceHTML))
	return
}
