package keys

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every key binding of the browser
type KeyMap struct {
	Quit       key.Binding
	ForceQuit  key.Binding
	NextZone   key.Binding
	PrevZone   key.Binding
	Up         key.Binding
	Down       key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Home       key.Binding
	End        key.Binding
	Pick       key.Binding
	Dismiss    key.Binding
	Toggle     key.Binding
	FocusInput key.Binding
	CycleSort  key.Binding
	Clear      key.Binding
	CopyLink   key.Binding
	Pager      key.Binding
	Help       key.Binding
}

// DefaultKeyMap returns the default bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
		NextZone:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevZone:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous panel")),
		Up:         key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:       key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Home:       key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g/home", "first")),
		End:        key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G/end", "last")),
		Pick:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "pick suggestion")),
		Dismiss:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "hide suggestions")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle filter")),
		FocusInput: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		CycleSort:  key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Clear:      key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
		CopyLink:   key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
		Pager:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "page results")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
	}
}

// ShortHelp returns the bindings shown in the help bar
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextZone, k.Toggle, k.CycleSort, k.Clear, k.CopyLink, k.Help, k.Quit}
}

// FullHelp returns the bindings grouped by column
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextZone, k.PrevZone, k.FocusInput},
		{k.Up, k.Down, k.PageUp, k.PageDown, k.Home, k.End},
		{k.Pick, k.Dismiss, k.Toggle},
		{k.CycleSort, k.Clear, k.CopyLink, k.Pager, k.Help, k.Quit},
	}
}
