// Package tui provides the Bubble Tea front end: key bindings, the play
// model, the map picker and lipgloss rendering of core screens.
package tui
