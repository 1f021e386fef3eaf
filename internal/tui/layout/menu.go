package layout

import (
	"github.com/alexisbeaulieu97/layoutkit/internal/config"
)

// Entry describes a menu item and its nested items.
type Entry struct {
	Title    string
	Children []Entry
}

// EntriesFromConfig converts configured menu items.
func EntriesFromConfig(items []config.MenuItem) []Entry {
	entries := make([]Entry, len(items))
	for i, item := range items {
		entries[i] = Entry{Title: item.Title, Children: EntriesFromConfig(item.Children)}
	}
	return entries
}

type menuNode struct {
	title    string
	parent   int
	children []int
	open     bool
}

// Menu is a tree of items flattened in display order. Item indices are
// stable for the life of the menu.
type Menu struct {
	nodes []menuNode
}

// NewMenu builds a menu with every group closed.
func NewMenu(entries []Entry) *Menu {
	m := &Menu{}
	m.add(entries, -1)
	return m
}

func (m *Menu) add(entries []Entry, parent int) []int {
	ids := make([]int, 0, len(entries))
	for _, e := range entries {
		id := len(m.nodes)
		m.nodes = append(m.nodes, menuNode{title: e.Title, parent: parent})
		ids = append(ids, id)
		children := m.add(e.Children, id)
		m.nodes[id].children = children
	}
	return ids
}

// Len is the total number of items, visible or not.
func (m *Menu) Len() int { return len(m.nodes) }

// Title returns the title of item i.
func (m *Menu) Title(i int) string { return m.nodes[i].title }

// HasChildren reports whether item i owns nested items.
func (m *Menu) HasChildren(i int) bool { return len(m.nodes[i].children) > 0 }

// Open reports whether group i shows its children.
func (m *Menu) Open(i int) bool { return m.nodes[i].open }

// SetOpen opens or closes group i.
func (m *Menu) SetOpen(i int, open bool) {
	if m.HasChildren(i) {
		m.nodes[i].open = open
	}
}

// Parent returns the enclosing item of i.
func (m *Menu) Parent(i int) (int, bool) {
	p := m.nodes[i].parent
	return p, p >= 0
}

// Ancestors lists the enclosing items of i, nearest first.
func (m *Menu) Ancestors(i int) []int {
	var out []int
	for p, ok := m.Parent(i); ok; p, ok = m.Parent(p) {
		out = append(out, p)
	}
	return out
}

// Depth is the number of ancestors of i.
func (m *Menu) Depth(i int) int {
	return len(m.Ancestors(i))
}

// Visible lists the items whose ancestors are all open, in display order.
func (m *Menu) Visible() []int {
	out := make([]int, 0, len(m.nodes))
	for i := range m.nodes {
		shown := true
		for _, a := range m.Ancestors(i) {
			if !m.nodes[a].open {
				shown = false
				break
			}
		}
		if shown {
			out = append(out, i)
		}
	}
	return out
}
