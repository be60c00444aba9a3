// Package render converts documentation markup and page data into HTML.
package render

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	goldmarkhtml "github.com/yuin/goldmark/renderer/html"
)

var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.DefinitionList,
		extension.Footnote,
	),
	goldmark.WithRendererOptions(
		// Doc blocks routinely embed raw HTML; pass it through.
		goldmarkhtml.WithUnsafe(),
	),
)

// Markdown converts a documentation block to an HTML fragment. Rendering is
// best-effort: if goldmark fails, the escaped source is returned verbatim
// rather than failing the build.
func Markdown(src string) template.HTML {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return template.HTML("<pre>" + template.HTMLEscapeString(src) + "</pre>")
	}
	return template.HTML(buf.String())
}
