package preview

import (
	_ "embed"
	"html/template"
)

//go:embed preview.css
var stylesheet string

//nolint:gochecknoglobals // Parsed once, read-only.
var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="UTF-8">
{{- if .Title}}
<title>{{.Title}}</title>
{{- end}}
<style>
{{.Stylesheet}}
</style>
</head>
<body>
{{.Body}}
</body>
</html>
`))

type pageData struct {
	Title      string
	Stylesheet template.CSS
	Body       template.HTML
}

// Stylesheet returns the fixed preview stylesheet.
func Stylesheet() string {
	return stylesheet
}

//nolint:gosec // The stylesheet is a compiled-in asset.
func stylesheetCSS() template.CSS {
	return template.CSS(stylesheet)
}

//nolint:gosec // Body is goldmark output; raw HTML passthrough is intended.
func trustedHTML(body []byte) template.HTML {
	return template.HTML(body)
}
