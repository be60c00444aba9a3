package render

import (
	"strings"
	"testing"

	"golang.org/x/net/html"
)

func pageData() PageData {
	return PageData{
		Title:      "Wolf Sheep",
		Info:       Markdown("# Wolf Sheep\n\nA predator-prey model."),
		ImageSrc:   "../../models/Biology/Wolf Sheep.png",
		Stylesheet: "../../styles.css",
		BackHref:   "../../index.html",
		RunURL:     "https://netlogoweb.org/launch#https://netlogoweb.org/assets/modelslib/Biology/Wolf%20Sheep.nlogox",
	}
}

func TestPage_CompleteDocument(t *testing.T) {
	out, err := Page(pageData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Errorf("expected full document, got prefix %q", out[:min(40, len(out))])
	}

	doc := parseDoc(t, out)
	if title := textOf(findElement(doc, "title")); title != "Wolf Sheep" {
		t.Errorf("expected title %q, got %q", "Wolf Sheep", title)
	}
	if href := attrOf(findElement(doc, "link"), "href"); href != "../../styles.css" {
		t.Errorf("expected stylesheet href %q, got %q", "../../styles.css", href)
	}
	if href := attrOf(findByClass(doc, "a", "back-link"), "href"); href != "../../index.html" {
		t.Errorf("expected back link %q, got %q", "../../index.html", href)
	}
	if !strings.Contains(out, "<h1>Wolf Sheep</h1>") {
		t.Errorf("expected doc heading from info markdown, got %q", out)
	}
}

func TestPage_RunButton(t *testing.T) {
	out, err := Page(pageData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	btn := findByClass(parseDoc(t, out), "a", "run-button")
	if btn == nil {
		t.Fatal("expected a run button")
	}
	href := attrOf(btn, "href")
	if !strings.Contains(href, "Biology/Wolf%20Sheep.nlogox") {
		t.Errorf("expected encoded model path in run URL, got %q", href)
	}
	if attrOf(btn, "target") != "_blank" || attrOf(btn, "rel") != "noopener" {
		t.Errorf("expected run button to open a new context, got target=%q rel=%q",
			attrOf(btn, "target"), attrOf(btn, "rel"))
	}
}

func TestPage_Screenshot(t *testing.T) {
	out, err := Page(pageData())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := findElement(parseDoc(t, out), "img")
	if img == nil {
		t.Fatal("expected an img element")
	}
	// The template's URL escaping encodes the space.
	if src := attrOf(img, "src"); src != "../../models/Biology/Wolf%20Sheep.png" {
		t.Errorf("unexpected img src %q", src)
	}
	if alt := attrOf(img, "alt"); alt != "Screenshot of Wolf Sheep" {
		t.Errorf("unexpected img alt %q", alt)
	}
}

func TestPage_NoScreenshotOmitsImage(t *testing.T) {
	d := pageData()
	d.ImageSrc = ""
	out, err := Page(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if img := findElement(parseDoc(t, out), "img"); img != nil {
		t.Errorf("expected no img element, found one with src %q", attrOf(img, "src"))
	}
}

func TestPage_EmptyInfoGetsPlaceholder(t *testing.T) {
	d := pageData()
	d.Info = ""
	out, err := Page(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "No info tab found.") {
		t.Errorf("expected placeholder paragraph, got %q", out)
	}
}

func TestPage_TitleEscaped(t *testing.T) {
	d := pageData()
	d.Title = `<script>alert("x")</script> & Sons`
	d.ImageSrc = ""
	out, err := Page(d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if strings.Contains(out, `<script>alert`) {
		t.Fatal("raw title injected into document")
	}
	// Round-trip: the parsed heading text matches the original title.
	doc := parseDoc(t, out)
	if got := textOf(findElement(doc, "h1")); got != d.Title {
		t.Errorf("expected heading text %q, got %q", d.Title, got)
	}
}

// Shared helpers for structural assertions on rendered documents.

func parseDoc(t *testing.T, s string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(s))
	if err != nil {
		t.Fatalf("output is not parseable html: %v", err)
	}
	return doc
}

func findElement(n *html.Node, tag string) *html.Node {
	if n.Type == html.ElementNode && n.Data == tag {
		return n
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if found := findElement(c, tag); found != nil {
			return found
		}
	}
	return nil
}

func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	if n.Type == html.ElementNode && n.Data == tag {
		out = append(out, n)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		out = append(out, findAll(c, tag)...)
	}
	return out
}

func findByClass(n *html.Node, tag, class string) *html.Node {
	for _, el := range findAll(n, tag) {
		if attrOf(el, "class") == class {
			return el
		}
	}
	return nil
}

func attrOf(n *html.Node, name string) string {
	if n == nil {
		return ""
	}
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var buf strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			buf.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return buf.String()
}
