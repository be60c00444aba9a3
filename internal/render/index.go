package render

import (
	"bytes"
	"fmt"
	"html/template"
)

// IndexData feeds the site index: the rendered folder tree plus the model
// count for the stats line.
type IndexData struct {
	Tree  template.HTML
	Count int
}

var indexTmpl = template.Must(template.New("index").Parse(`<!doctype html>
<html lang="en">
  <head>
    <meta charset="utf-8" />
    <meta name="viewport" content="width=device-width, initial-scale=1" />
    <title>NetLogo Models</title>
    <link rel="stylesheet" href="styles.css" />
  </head>
  <body>
    <header class="header">
      <div class="header__title">
        <h1>NetLogo Models</h1>
      </div>
    </header>
    <main class="main">
      <div class="stats-row">
        <div class="stats">{{.Count}} models</div>
        <div class="header__actions">
          <button class="action-button" type="button" data-action="expand">
            <span class="icon">&#x2795;</span>Expand all folders
          </button>
          <button class="action-button" type="button" data-action="collapse">
            <span class="icon">&#x2796;</span>Collapse all folders
          </button>
        </div>
      </div>
      <div class="tree">{{.Tree}}</div>
    </main>
    <script>
      const detailsNodes = () => Array.from(document.querySelectorAll(".tree details"));
      document.querySelectorAll(".action-button").forEach((button) => {
        button.addEventListener("click", () => {
          const expand = button.dataset.action === "expand";
          detailsNodes().forEach((node) => {
            node.open = expand;
          });
        });
      });
    </script>
  </body>
</html>
`))

// Index renders the site index document around an already-rendered tree.
func Index(d IndexData) (string, error) {
	var buf bytes.Buffer
	if err := indexTmpl.Execute(&buf, d); err != nil {
		return "", fmt.Errorf("render index: %w", err)
	}
	return buf.String(), nil
}
