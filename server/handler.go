package server

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"

	"github.com/Tom-Sloan/SSH-File-Browser-Appender/adapters/storage"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/application"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/logging"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/paths"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/search"
	"github.com/Tom-Sloan/SSH-File-Browser-Appender/ui"
)

// sessionModel wraps ui.Model to log session lifetimes
type sessionModel struct {
	*ui.Model
	sessionID string
	startTime time.Time
}

func (s *sessionModel) Init() tea.Cmd {
	return s.Model.Init()
}

func (s *sessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if _, ok := msg.(tea.QuitMsg); ok {
		logging.Logger.Info("SSH session ended",
			"session_id", s.sessionID,
			"duration", time.Since(s.startTime).String())
	}

	updatedModel, cmd := s.Model.Update(msg)
	if m, ok := updatedModel.(*ui.Model); ok {
		s.Model = m
	}
	return s, cmd
}

func (s *sessionModel) View() string {
	return s.Model.View()
}

// teaHandler creates a Bubble Tea model for each SSH session
func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, _ := sess.Pty()
	sessionID := fmt.Sprintf("%s@%s", sess.User(), sess.RemoteAddr().String())

	logging.Logger.Info("New SSH session",
		"session_id", sessionID,
		"user", sess.User(),
		"remote_addr", sess.RemoteAddr().String(),
		"term", pty.Term,
		"window", fmt.Sprintf("%dx%d", pty.Window.Width, pty.Window.Height))

	errorClearDelay := 10 * time.Second
	if s.settings.ErrorClearDelay != nil {
		errorClearDelay = time.Duration(*s.settings.ErrorClearDelay) * time.Second
	}

	suggestionLimit := search.DefaultLimit
	if s.settings.SuggestionLimit != nil {
		suggestionLimit = *s.settings.SuggestionLimit
	}

	recentsPath := s.settings.RecentsPath
	if recentsPath == "" {
		recentsPath = paths.GetRecentsPath()
	}

	cfg := ui.ModelConfig{
		BackendFor:      application.BackendFor,
		Recents:         storage.NewRecentsFile(recentsPath),
		DefaultHost:     s.settings.DefaultHost,
		DefaultUser:     s.settings.DefaultUser,
		DefaultBaseDir:  s.baseDir,
		SuggestionLimit: suggestionLimit,
		ErrorClearDelay: errorClearDelay,
	}

	model := &sessionModel{
		Model:     ui.NewModel(cfg),
		sessionID: sessionID,
		startTime: time.Now(),
	}

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}
