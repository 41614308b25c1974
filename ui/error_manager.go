package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// clearErrorMsg triggers error clearing after the configured delay
type clearErrorMsg struct{}

// ErrorManager holds the error currently shown in the status line. Errors
// are transient: each SetError is paired with a ClearAfterDelay command so
// stale failures never linger on screen.
type ErrorManager struct {
	current    error
	clearDelay time.Duration
}

// NewErrorManager creates an ErrorManager with the given auto-clear delay
func NewErrorManager(clearDelay time.Duration) *ErrorManager {
	return &ErrorManager{clearDelay: clearDelay}
}

// SetError sets the error to display
func (em *ErrorManager) SetError(err error) {
	em.current = err
}

// ClearError clears the displayed error
func (em *ErrorManager) ClearError() {
	em.current = nil
}

// GetError returns the displayed error, or nil
func (em *ErrorManager) GetError() error {
	return em.current
}

// HasError reports whether an error is displayed
func (em *ErrorManager) HasError() bool {
	return em.current != nil
}

// ClearAfterDelay returns a command that sends clearErrorMsg after the
// configured delay
func (em *ErrorManager) ClearAfterDelay() tea.Cmd {
	return tea.Tick(em.clearDelay, func(time.Time) tea.Msg {
		return clearErrorMsg{}
	})
}
