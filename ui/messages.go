package ui

// Messages delivered back to the update loop by backend workers. Every
// blocking backend call runs inside a tea.Cmd and reports through one of
// these; the interaction loop itself never touches the connection.

// connectResultMsg reports the outcome of establishing a backend
type connectResultMsg struct {
	err error
}

// expandResultMsg reports the outcome of expanding one tree node
type expandResultMsg struct {
	key string
	err error
}

// addAllResultMsg reports the outcome of adding a folder's files
type addAllResultMsg struct {
	dir   string
	added int
	err   error
}

// aggregateResultMsg carries a freshly built text artifact
type aggregateResultMsg struct {
	text string
	err  error
}

// copiedMsg reports the outcome of a clipboard copy
type copiedMsg struct {
	err error
}

// recentSavedMsg reports the outcome of persisting a recent base path
type recentSavedMsg struct {
	err error
}
