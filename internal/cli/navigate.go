package cli

import (
	"github.com/alexanderramin/jornada/internal/domain"
	tea "github.com/charmbracelet/bubbletea"
)

// Navigation messages used by views to request view transitions.
// The appModel handles these in its Update method.

// pushViewMsg pushes a new view onto the navigation stack.
type pushViewMsg struct {
	view View
}

// popViewMsg pops the current view off the navigation stack,
// returning to the previous view.
type popViewMsg struct{}

// replaceViewMsg replaces the current top view with a new one.
type replaceViewMsg struct {
	view View
}

// resetViewsMsg discards the whole stack and starts over from view.
type resetViewsMsg struct {
	view View
}

// wizardCompleteMsg is sent when a wizard form completes or is cancelled.
// The appModel handles it atomically: pop the wizard view, then run nextCmd.
type wizardCompleteMsg struct {
	nextCmd tea.Cmd
}

// activityFinishedMsg reports a completed activity to the views below it.
type activityFinishedMsg struct {
	stepID  string
	summary domain.Summary
}

// loggedOutMsg is sent after the session was cleared.
type loggedOutMsg struct{}

// pushView returns a tea.Cmd that pushes a view onto the stack.
func pushView(v View) tea.Cmd {
	return func() tea.Msg { return pushViewMsg{view: v} }
}

// popView returns a tea.Cmd that pops the current view.
func popView() tea.Cmd {
	return func() tea.Msg { return popViewMsg{} }
}

// replaceView returns a tea.Cmd that replaces the top view.
func replaceView(v View) tea.Cmd {
	return func() tea.Msg { return replaceViewMsg{view: v} }
}

// resetViews returns a tea.Cmd that replaces the whole stack with v.
func resetViews(v View) tea.Cmd {
	return func() tea.Msg { return resetViewsMsg{view: v} }
}
