// Package tree accumulates discovered model paths into a folder hierarchy
// and renders it as nested collapsible-list HTML.
package tree

// Entry is a leaf in the tree: a model's file name plus the site-relative
// link to its generated page.
type Entry struct {
	Name string
	Href string
}

// Node is one folder. Children maps subfolder name to subtree; Files holds
// the models directly inside the folder. Ordering is imposed at render time,
// never stored here.
type Node struct {
	Children map[string]*Node
	Files    []Entry
}

func New() *Node {
	return &Node{}
}

// Insert walks or creates a folder node per leading path segment and attaches
// the final segment as a leaf. Insertion order never affects rendered output.
func (n *Node) Insert(parts []string, href string) {
	if len(parts) == 0 {
		return
	}
	if len(parts) == 1 {
		n.Files = append(n.Files, Entry{Name: parts[0], Href: href})
		return
	}
	if n.Children == nil {
		n.Children = make(map[string]*Node)
	}
	child, ok := n.Children[parts[0]]
	if !ok {
		child = &Node{}
		n.Children[parts[0]] = child
	}
	child.Insert(parts[1:], href)
}
