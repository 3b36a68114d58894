// Package ui provides Bubbletea TUI components for rainbow.
package ui

// SelectionChangedMsg is sent when the menu highlight moves to a different row.
type SelectionChangedMsg struct {
	Row int
}

// CopyResultMsg reports a clipboard copy of the selected row.
type CopyResultMsg struct {
	Row   int
	Error error
}

// ExportResultMsg reports a PNG export of the current chart.
type ExportResultMsg struct {
	Path  string
	Bytes int64
	Error error
}
