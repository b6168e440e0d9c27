package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary   lipgloss.Color
	Secondary lipgloss.Color
	Muted     lipgloss.Color
	Error     lipgloss.Color
	Success   lipgloss.Color

	TitleNormal   lipgloss.Color
	TitleSelected lipgloss.Color
	SelectedBg    lipgloss.Color
}{
	Primary:   lipgloss.Color("#6C5CE7"), // Purple
	Secondary: lipgloss.Color("#A29BFE"), // Lavender
	Muted:     lipgloss.Color("#636E72"), // Gray
	Error:     lipgloss.Color("#D63031"), // Red
	Success:   lipgloss.Color("#00B894"), // Green

	TitleNormal:   lipgloss.Color("#DFE6E9"), // Light gray
	TitleSelected: lipgloss.Color("#FFEAA7"), // Yellow
	SelectedBg:    lipgloss.Color("#2D3436"), // Dark gray
}

// Styles contains all the lipgloss styles for the TUI.
type Styles struct {
	App lipgloss.Style

	// Header
	Header      lipgloss.Style
	HeaderText  lipgloss.Style
	Tab         lipgloss.Style
	TabSelected lipgloss.Style

	// Task list
	TaskList          lipgloss.Style
	TaskSelected      lipgloss.Style
	TaskText          lipgloss.Style
	TaskTextSelected  lipgloss.Style
	TaskTextCompleted lipgloss.Style
	Checkbox          lipgloss.Style
	CheckboxDone      lipgloss.Style
	CursorSelected    lipgloss.Style
	Empty             lipgloss.Style

	// Input
	InputPrompt lipgloss.Style

	// Footer
	Footer    lipgloss.Style
	FooterKey lipgloss.Style
	ItemsLeft lipgloss.Style

	// Help
	Help lipgloss.Style

	ErrorMsg lipgloss.Style
}

// DefaultStyles returns the default styles for the TUI.
func DefaultStyles() Styles {
	return Styles{
		App: lipgloss.NewStyle().
			Padding(1, 2),

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(Colors.Primary).
			MarginBottom(1),

		HeaderText: lipgloss.NewStyle().
			Bold(true),

		Tab: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Padding(0, 1),

		TabSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true).
			Underline(true).
			Padding(0, 1),

		TaskList: lipgloss.NewStyle().
			MarginBottom(1),

		TaskSelected: lipgloss.NewStyle().
			Background(Colors.SelectedBg),

		TaskText: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		TaskTextSelected: lipgloss.NewStyle().
			Foreground(Colors.TitleSelected).
			Bold(true),

		TaskTextCompleted: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Strikethrough(true),

		Checkbox: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		CheckboxDone: lipgloss.NewStyle().
			Foreground(Colors.Success),

		CursorSelected: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Empty: lipgloss.NewStyle().
			Foreground(Colors.Muted).
			Italic(true),

		InputPrompt: lipgloss.NewStyle().
			Foreground(Colors.Primary).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Colors.Muted),

		FooterKey: lipgloss.NewStyle().
			Foreground(Colors.Secondary),

		ItemsLeft: lipgloss.NewStyle().
			Foreground(Colors.TitleNormal),

		Help: lipgloss.NewStyle().
			Padding(1, 2),

		ErrorMsg: lipgloss.NewStyle().
			Foreground(Colors.Error).
			Bold(true),
	}
}
