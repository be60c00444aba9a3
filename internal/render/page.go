package render

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"
)

// PageData holds everything one model page needs. Info is an already-rendered
// fragment; all other fields are escaped by the template.
type PageData struct {
	Title      string
	Info       template.HTML
	ImageSrc   string // empty when no screenshot exists
	Stylesheet string
	BackHref   string
	RunURL     string
}

const noInfoPlaceholder = template.HTML("<p><em>No info tab found.</em></p>")

var pageTmpl = template.Must(template.New("page").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>{{.Title}}</title>
    <link rel="stylesheet" href="{{.Stylesheet}}" />
  </head>
  <body>
    <main class="model-page">
      <a class="back-link" href="{{.BackHref}}">&larr; Back to list</a>
      <div class="model-card">
        <div class="model-header">
          <h1>{{.Title}}</h1>
          <a class="run-button" href="{{.RunURL}}" target="_blank" rel="noopener">Run on NetLogoWeb</a>
        </div>
        {{if .ImageSrc}}<img src="{{.ImageSrc}}" alt="Screenshot of {{.Title}}" />
        {{end}}<div class="model-info">{{.Info}}</div>
      </div>
    </main>
  </body>
</html>
`))

// Page renders one complete standalone model page. An empty Info fragment is
// replaced by the placeholder paragraph, never an empty container.
func Page(d PageData) (string, error) {
	if strings.TrimSpace(string(d.Info)) == "" {
		d.Info = noInfoPlaceholder
	}

	var buf bytes.Buffer
	if err := pageTmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render page %q: %w", d.Title, err)
	}
	return buf.String(), nil
}
