package input

import (
	"docfinder/internal/ui/viewmodels"
)

// ModelContext implements the Context interface for the input handler
type ModelContext struct {
	Directory *viewmodels.DirectoryViewModel
	Options   []viewmodels.FilterOption
}

// SuggestionsOpen reports whether the suggestion list is shown
func (c *ModelContext) SuggestionsOpen() bool {
	return len(c.Directory.Suggestions()) > 0
}

// FilterCount returns the number of filter controls
func (c *ModelContext) FilterCount() int {
	return len(c.Options)
}

// ResultCount returns the number of displayed doctors
func (c *ModelContext) ResultCount() int {
	return len(c.Directory.Displayed())
}
