package tree

import (
	"bytes"
	"fmt"
	"html/template"
	"sort"
	"strings"
)

// View types feed the recursive template. They are rebuilt (and re-sorted)
// on every render; the Node itself stays unordered.
type nodeView struct {
	Folders []folderView
	Files   []fileView
}

type folderView struct {
	Name string
	Open bool
	Tree nodeView
}

type fileView struct {
	Name string // display name, source extension stripped
	Href string
}

var treeTmpl = template.Must(template.New("tree").Parse(`<ul>
{{- range .Folders}}
<li><details{{if .Open}} open{{end}}><summary><span class="icon folder">&#x1F4C1;</span>{{.Name}}</summary>{{template "tree" .Tree}}</details></li>
{{- end}}
{{- range .Files}}
<li><a href="{{.Href}}" target="_blank" rel="noopener"><img class="icon file-icon" src="assets/model.png" alt="" />{{.Name}}</a></li>
{{- end}}
</ul>`))

// RenderHTML renders the whole tree. prefix is prepended to every leaf link
// (the index passes "" because links are stored site-root-relative). stripExt
// is removed from file names for display only. open expands the top-level
// folders; deeper levels always start collapsed.
func RenderHTML(n *Node, prefix, stripExt string, open bool) (template.HTML, error) {
	var buf bytes.Buffer
	if err := treeTmpl.Execute(&buf, viewOf(n, prefix, stripExt, open)); err != nil {
		return "", fmt.Errorf("render tree: %w", err)
	}
	return template.HTML(buf.String()), nil
}

func viewOf(n *Node, prefix, stripExt string, open bool) nodeView {
	var v nodeView

	names := make([]string, 0, len(n.Children))
	for name := range n.Children {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		return caselessLess(names[i], names[j])
	})
	for _, name := range names {
		v.Folders = append(v.Folders, folderView{
			Name: name,
			Open: open,
			Tree: viewOf(n.Children[name], prefix, stripExt, false),
		})
	}

	files := make([]Entry, len(n.Files))
	copy(files, n.Files)
	sort.Slice(files, func(i, j int) bool {
		return caselessLess(files[i].Name, files[j].Name)
	})
	for _, f := range files {
		v.Files = append(v.Files, fileView{
			Name: strings.TrimSuffix(f.Name, stripExt),
			Href: prefix + f.Href,
		})
	}

	return v
}

// caselessLess orders case-insensitively, falling back to a case-sensitive
// compare so siblings differing only in case still sort deterministically.
func caselessLess(a, b string) bool {
	la, lb := strings.ToLower(a), strings.ToLower(b)
	if la != lb {
		return la < lb
	}
	return a < b
}
