package ui

import (
	"fmt"
	"strings"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/domain"
)

// SelectionPanel lists the chosen paths, shortened against the session base.
// Each render rebuilds a display table so a pick always resolves to the
// absolute path it was shortened from, even if the base changed since.
type SelectionPanel struct {
	selection *domain.SelectionSet
	base      string
	cursor    int

	displays []string
	table    *domain.DisplayTable
}

// NewSelectionPanel creates a panel over selection
func NewSelectionPanel(selection *domain.SelectionSet, base string) *SelectionPanel {
	p := &SelectionPanel{selection: selection, base: base}
	p.Rebuild()
	return p
}

// SetSession repoints the panel after a reconnect
func (p *SelectionPanel) SetSession(selection *domain.SelectionSet, base string) {
	p.selection = selection
	p.base = base
	p.cursor = 0
	p.Rebuild()
}

// Rebuild refreshes the shortened listing from the selection
func (p *SelectionPanel) Rebuild() {
	p.table, p.displays = domain.NewDisplayTable(p.base, p.selection.Paths())
	if p.cursor >= len(p.displays) {
		p.cursor = len(p.displays) - 1
	}
	if p.cursor < 0 {
		p.cursor = 0
	}
}

// MoveUp moves the cursor one row up
func (p *SelectionPanel) MoveUp() {
	if p.cursor > 0 {
		p.cursor--
	}
}

// MoveDown moves the cursor one row down
func (p *SelectionPanel) MoveDown() {
	if p.cursor < len(p.displays)-1 {
		p.cursor++
	}
}

// Current resolves the highlighted display entry back to its absolute path
func (p *SelectionPanel) Current() (string, bool) {
	if p.cursor < 0 || p.cursor >= len(p.displays) {
		return "", false
	}
	return p.table.Resolve(p.displays[p.cursor])
}

// RemoveCurrent drops the highlighted path from the selection
func (p *SelectionPanel) RemoveCurrent() {
	if path, ok := p.Current(); ok {
		p.selection.Remove(path)
		p.Rebuild()
	}
}

// View renders the shortened selection list
func (p *SelectionPanel) View() string {
	if len(p.displays) == 0 {
		return dimStyle.Render("(no files selected)")
	}

	var sb strings.Builder
	for i, d := range p.displays {
		if i > 0 {
			sb.WriteString("\n")
		}
		line := fmt.Sprintf("%2d. %s", i+1, d)
		if i == p.cursor {
			sb.WriteString(cursorStyle.Render("> " + line))
		} else {
			sb.WriteString(normalStyle.Render("  " + line))
		}
	}
	return sb.String()
}
