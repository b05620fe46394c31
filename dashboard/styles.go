package dashboard

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary = lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D79F6"}
	colorSubtle  = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	colorDone    = lipgloss.AdaptiveColor{Light: "#43A047", Dark: "#73D216"}
	colorAlert   = lipgloss.AdaptiveColor{Light: "#D32F2F", Dark: "#FF5F56"}
)

type styles struct {
	Header     lipgloss.Style
	Breadcrumb lipgloss.Style
	Item       lipgloss.Style
	Cursor     lipgloss.Style
	Done       lipgloss.Style
	Pending    lipgloss.Style
	Empty      lipgloss.Style
	Alert      lipgloss.Style
	Filter     lipgloss.Style
	FilterOn   lipgloss.Style
	Prompt     lipgloss.Style
}

func defaultStyles() styles {
	return styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1),
		Breadcrumb: lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 1),
		Item: lipgloss.NewStyle().
			PaddingLeft(2),
		Cursor: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true),
		Done: lipgloss.NewStyle().
			Foreground(colorDone).
			Strikethrough(true),
		Pending: lipgloss.NewStyle(),
		Empty: lipgloss.NewStyle().
			Foreground(colorSubtle).
			Italic(true).
			PaddingLeft(2),
		Alert: lipgloss.NewStyle().
			Foreground(colorAlert).
			Bold(true),
		Filter: lipgloss.NewStyle().
			Foreground(colorSubtle).
			Padding(0, 1),
		FilterOn: lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true).
			Padding(0, 1),
		Prompt: lipgloss.NewStyle().
			Foreground(colorPrimary),
	}
}
