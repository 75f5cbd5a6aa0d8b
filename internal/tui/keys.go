package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap 终端界面的按键绑定
type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Start  key.Binding
	End    key.Binding
	Easy   key.Binding
	Medium key.Binding
	Hard   key.Binding
	Mode   key.Binding
	Help   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "lane up")),
		Down:   key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "lane down")),
		Start:  key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "start")),
		End:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "end game")),
		Easy:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "easy")),
		Medium: key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "medium")),
		Hard:   key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "hard")),
		Mode:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "mode")),
		Help:   key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp 实现 help.KeyMap
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Start, k.End, k.Help, k.Quit}
}

// FullHelp 实现 help.KeyMap
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down},
		{k.Start, k.End},
		{k.Easy, k.Medium, k.Hard, k.Mode},
		{k.Help, k.Quit},
	}
}
