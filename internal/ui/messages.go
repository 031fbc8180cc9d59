package ui

import (
	"docfinder/internal/domain"
)

// directoryLoadedMsg carries the result of the one-time fetch
type directoryLoadedMsg struct {
	doctors []domain.Doctor
	failed  bool
}

// clipboardMsg contains the result of copying the shareable link
type clipboardMsg struct {
	link string
	err  error
}

// pagerExitMsg contains the result of the results pager
type pagerExitMsg struct {
	err error
}

// clearStatusMsg clears the status bar message set with the same seq
type clearStatusMsg struct {
	seq int
}
