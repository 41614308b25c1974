package ui

import (
	"strings"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/tree"
)

// treeRow is one visible line of the tree panel
type treeRow struct {
	key      string
	name     string
	depth    int
	isDir    bool
	expanded bool
}

// TreePanel renders the virtual tree and tracks a cursor over its visible
// rows. It holds no filesystem state of its own; Rebuild re-reads the store
// after every expansion.
type TreePanel struct {
	store  *tree.Store
	rows   []treeRow
	cursor int
	height int
	offset int
}

// NewTreePanel creates a panel over store
func NewTreePanel(store *tree.Store) *TreePanel {
	p := &TreePanel{store: store, height: 20}
	p.Rebuild()
	return p
}

// SetStore swaps the backing tree (after a reconnect)
func (p *TreePanel) SetStore(store *tree.Store) {
	p.store = store
	p.cursor = 0
	p.offset = 0
	p.Rebuild()
}

// SetHeight sets the number of rows the panel may draw
func (p *TreePanel) SetHeight(h int) {
	if h < 3 {
		h = 3
	}
	p.height = h
}

// Rebuild recomputes the visible rows from the store, walking expanded
// directories depth first in their stored child order.
func (p *TreePanel) Rebuild() {
	p.rows = p.rows[:0]
	if p.store == nil {
		return
	}
	root := p.store.Root()
	if root == "" {
		return
	}
	p.walk(root, 0)
	if p.cursor >= len(p.rows) {
		p.cursor = len(p.rows) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

func (p *TreePanel) walk(key string, depth int) {
	node, ok := p.store.Get(key)
	if !ok {
		return
	}
	p.rows = append(p.rows, treeRow{
		key:      node.Key,
		name:     node.DisplayName,
		depth:    depth,
		isDir:    node.Kind == domain.KindDirectory,
		expanded: node.Expanded,
	})
	if !node.Expanded {
		return
	}
	for _, child := range node.Children {
		p.walk(child, depth+1)
	}
}

// MoveUp moves the cursor one row up
func (p *TreePanel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
	p.scroll()
}

// MoveDown moves the cursor one row down
func (p *TreePanel) MoveDown() {
	if p.cursor < len(p.rows)-1 {
		p.cursor++
	}
	p.scroll()
}

func (p *TreePanel) scroll() {
	if p.cursor < p.offset {
		p.offset = p.cursor
	}
	if p.cursor >= p.offset+p.height {
		p.offset = p.cursor - p.height + 1
	}
}

// Current returns the node under the cursor
func (p *TreePanel) Current() (domain.Node, bool) {
	if p.cursor < 0 || p.cursor >= len(p.rows) {
		return domain.Node{}, false
	}
	return p.store.Get(p.rows[p.cursor].key)
}

// View renders the visible window of rows
func (p *TreePanel) View(selected func(string) bool) string {
	if len(p.rows) == 0 {
		return dimStyle.Render("(empty)")
	}

	end := p.offset + p.height
	if end > len(p.rows) {
		end = len(p.rows)
	}

	var sb strings.Builder
	for i := p.offset; i < end; i++ {
		row := p.rows[i]
		if i > p.offset {
			sb.WriteString("\n")
		}

		cursor := "  "
		if i == p.cursor {
			cursor = cursorStyle.Render("> ")
		}

		indent := strings.Repeat("  ", row.depth)
		label := row.name
		switch {
		case row.isDir && row.expanded:
			label = dirStyle.Render("▾ " + label + "/")
		case row.isDir:
			label = dirStyle.Render("▸ " + label + "/")
		case selected != nil && selected(row.key):
			label = selectedStyle.Render("✓ " + label)
		default:
			label = fileStyle.Render("  " + label)
		}

		sb.WriteString(cursor + indent + label)
	}
	return sb.String()
}
