package httpx

import _ "embed"

//go:embed templates/testpage.html
var testPageHTML string

//go:embed templates/source.html
var sourceHTML string
