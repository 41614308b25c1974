package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

// BackendMode selects which filesystem provider a session uses. It is chosen
// once per connect; everything past the form depends only on the backend
// interface.
type BackendMode string

const (
	ModeLocal  BackendMode = "local"
	ModeRemote BackendMode = "remote"
)

// ConnectResult holds the values collected by the connect form
type ConnectResult struct {
	Mode       BackendMode
	Host       string
	User       string
	Password   string
	BaseDir    string
	SaveRecent bool
	Cancelled  bool
}

// ConnectForm gathers connection parameters before a session is established
type ConnectForm struct {
	Completed bool
	form      *huh.Form
	result    ConnectResult
}

// NewConnectForm builds the form, prefilled with defaults and offering the
// recents list as base dir suggestions.
func NewConnectForm(defaultHost, defaultUser, defaultBase string, recents []string) *ConnectForm {
	cf := &ConnectForm{
		result: ConnectResult{
			Mode:       ModeRemote,
			Host:       defaultHost,
			User:       defaultUser,
			BaseDir:    defaultBase,
			SaveRecent: true,
		},
	}

	modeSelect := huh.NewSelect[BackendMode]().
		Title("Filesystem").
		Options(
			huh.NewOption("Remote host (SFTP)", ModeRemote),
			huh.NewOption("Local disk", ModeLocal),
		).
		Value(&cf.result.Mode)

	hostField := huh.NewInput().
		Title("Host").
		Value(&cf.result.Host).
		Validate(cf.requiredForRemote("host"))

	userField := huh.NewInput().
		Title("User").
		Value(&cf.result.User).
		Validate(cf.requiredForRemote("user"))

	passwordField := huh.NewInput().
		Title("Password").
		EchoMode(huh.EchoModePassword).
		Value(&cf.result.Password).
		Validate(cf.requiredForRemote("password"))

	baseField := huh.NewInput().
		Title("Base dir").
		Suggestions(recents).
		Value(&cf.result.BaseDir).
		Validate(func(s string) error {
			if strings.TrimSpace(s) == "" {
				return fmt.Errorf("base dir is required")
			}
			return nil
		})

	saveField := huh.NewConfirm().
		Title("Remember base dir?").
		Affirmative("Yes").
		Negative("No").
		Value(&cf.result.SaveRecent)

	cf.form = huh.NewForm(
		huh.NewGroup(modeSelect),
		huh.NewGroup(hostField, userField, passwordField).
			WithHideFunc(func() bool { return cf.result.Mode == ModeLocal }),
		huh.NewGroup(baseField, saveField),
	)
	return cf
}

// requiredForRemote validates a credential field only in remote mode
func (cf *ConnectForm) requiredForRemote(name string) func(string) error {
	return func(s string) error {
		if cf.result.Mode == ModeRemote && strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required for a remote connection", name)
		}
		return nil
	}
}

// Init implements tea.Model
func (cf *ConnectForm) Init() tea.Cmd {
	return cf.form.Init()
}

// Update implements tea.Model
func (cf *ConnectForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}
	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
	}
	if cf.form.State == huh.StateAborted {
		cf.result.Cancelled = true
		cf.Completed = true
	}
	return cf, cmd
}

// View implements tea.Model
func (cf *ConnectForm) View() string {
	return titleStyle.Render("Connect") + "\n" + cf.form.View()
}

// Result returns the collected values once Completed is true
func (cf *ConnectForm) Result() ConnectResult {
	r := cf.result
	r.Host = strings.TrimSpace(r.Host)
	r.User = strings.TrimSpace(r.User)
	r.BaseDir = strings.TrimSpace(r.BaseDir)
	return r
}
