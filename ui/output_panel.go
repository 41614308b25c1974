package ui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// OutputPanel holds the accumulated aggregated text. New aggregations append
// to what is already there; Clear starts over.
type OutputPanel struct {
	Viewport viewport.Model
	text     string
}

// NewOutputPanel creates an empty output panel
func NewOutputPanel(width, height int) *OutputPanel {
	vp := viewport.New(width, height)
	return &OutputPanel{Viewport: vp}
}

// Append adds a freshly aggregated artifact to the existing text
func (p *OutputPanel) Append(text string) {
	p.text += text
	p.Viewport.SetContent(p.text)
	p.Viewport.GotoBottom()
}

// Clear discards the accumulated text
func (p *OutputPanel) Clear() {
	p.text = ""
	p.Viewport.SetContent("")
	p.Viewport.GotoTop()
}

// Text returns the accumulated text
func (p *OutputPanel) Text() string {
	return p.text
}

// Empty reports whether there is any text
func (p *OutputPanel) Empty() bool {
	return p.text == ""
}

// Copy writes the accumulated text to the system clipboard
func (p *OutputPanel) Copy() tea.Cmd {
	text := p.text
	return func() tea.Msg {
		return copiedMsg{err: clipboard.WriteAll(text)}
	}
}

// Resize adjusts the viewport dimensions
func (p *OutputPanel) Resize(width, height int) {
	p.Viewport.Width = width
	p.Viewport.Height = height
}

// View renders the viewport
func (p *OutputPanel) View() string {
	if p.text == "" {
		return dimStyle.Render("(fetch & append to fill this panel)")
	}
	return p.Viewport.View()
}
