package output

import (
	"cmp"
	"path"
	"slices"
	"strings"
	"unicode/utf8"
)

const (
	branchMid  = "├── "
	branchEnd  = "└── "
	indentPipe = "│   "
	indentNone = "    "

	// Column the descriptions start at.
	descriptionColumn = 44
)

// TreeEntry is one path drawn by RenderFileTree.
type TreeEntry struct {
	// Path is slash-separated and relative to the tree root.
	Path string

	// Description is printed dimmed next to the entry.
	Description string

	// Dir marks a directory. Intermediate path elements are always
	// directories.
	Dir bool
}

type fileNode struct {
	name     string
	desc     string
	dir      bool
	children map[string]*fileNode
}

func (n *fileNode) child(name string) *fileNode {
	if n.children == nil {
		n.children = make(map[string]*fileNode)
	}
	c, ok := n.children[name]
	if !ok {
		c = &fileNode{name: name}
		n.children[name] = c
	}
	return c
}

// sorted returns the children with directories first, then by name.
func (n *fileNode) sorted() []*fileNode {
	out := make([]*fileNode, 0, len(n.children))
	for _, c := range n.children {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b *fileNode) int {
		if a.dir != b.dir {
			if a.dir {
				return -1
			}
			return 1
		}
		return cmp.Compare(a.name, b.name)
	})
	return out
}

// RenderFileTree draws entries below rootName with their descriptions
// aligned in one column. An empty entry list renders nothing.
func RenderFileTree(rootName string, entries []TreeEntry) string {
	if len(entries) == 0 {
		return ""
	}

	root := &fileNode{name: rootName, dir: true}
	for _, e := range entries {
		clean := strings.Trim(path.Clean("/"+e.Path), "/")
		if clean == "" {
			continue
		}
		parts := strings.Split(clean, "/")
		n := root
		for _, part := range parts[:len(parts)-1] {
			n = n.child(part)
			n.dir = true
		}
		n = n.child(parts[len(parts)-1])
		n.desc = e.Description
		n.dir = n.dir || e.Dir
	}

	var sb strings.Builder
	sb.WriteString(StyleSummary.Render(strings.TrimSuffix(rootName, "/") + "/"))
	sb.WriteString("\n")
	writeChildren(&sb, root, "")
	return sb.String()
}

func writeChildren(sb *strings.Builder, n *fileNode, indent string) {
	children := n.sorted()
	for i, c := range children {
		branch, next := branchMid, indentPipe
		if i == len(children)-1 {
			branch, next = branchEnd, indentNone
		}

		line := indent + branch + c.name
		if c.dir {
			line += "/"
		}
		if c.desc != "" {
			pad := max(descriptionColumn-utf8.RuneCountInString(line), 2)
			line += strings.Repeat(" ", pad) + StyleDim.Render(c.desc)
		}
		sb.WriteString(line)
		sb.WriteString("\n")

		writeChildren(sb, c, indent+next)
	}
}
