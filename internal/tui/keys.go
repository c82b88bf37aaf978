package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Search     key.Binding
	Prev       key.Binding
	Next       key.Binding
	NextColumn key.Binding
	Sort       key.Binding
	Grow       key.Binding
	Shrink     key.Binding
	Quit       key.Binding
	Leave      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Search:     key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Prev:       key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev page")),
		Next:       key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next page")),
		NextColumn: key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "column")),
		Sort:       key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "sort")),
		Grow:       key.NewBinding(key.WithKeys("+", "="), key.WithHelp("+", "more rows")),
		Shrink:     key.NewBinding(key.WithKeys("-"), key.WithHelp("-", "fewer rows")),
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Leave:      key.NewBinding(key.WithKeys("enter", "esc"), key.WithHelp("enter/esc", "done")),
	}
}

func (k keyMap) help(searching bool) []key.Binding {
	if searching {
		return []key.Binding{k.Leave}
	}

	return []key.Binding{k.Search, k.Prev, k.Next, k.NextColumn, k.Sort, k.Grow, k.Shrink, k.Quit}
}
