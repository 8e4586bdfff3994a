package report

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// Theme defines a color scheme for the report and the browser
type Theme struct {
	Name       string
	Accent     string // Titles, selected word
	Secondary  string // Samples box border, search box
	Good       string // Passing checks, values
	Bad        string // Failing checks
	Label      string // Labels, help text
	Muted      string // Unselected words
	Border     string // Attributes box border
	SelectedBg string // Selected word background
}

// Available themes
var Themes = map[string]Theme{
	"default": {
		Name:       "Default",
		Accent:     "#C73B3C", // Burgundy red
		Secondary:  "#C73B3C",
		Good:       "#5fafaf", // Teal
		Bad:        "#ff5f5f", // Bright red
		Label:      "#6c6c6c", // Gray
		Muted:      "#8a8a8a", // Light gray
		Border:     "#5f87d7", // Blue
		SelectedBg: "#303030", // Dark gray
	},
	"gruvbox": {
		Name:       "Gruvbox",
		Accent:     "#d65d0e", // Orange
		Secondary:  "#b16286", // Purple
		Good:       "#98971a", // Green
		Bad:        "#cc241d", // Red
		Label:      "#928374", // Gray
		Muted:      "#a89984", // Light gray
		Border:     "#458588", // Aqua
		SelectedBg: "#3c3836", // bg1
	},
	"tokyonight": {
		Name:       "Tokyo Night",
		Accent:     "#7aa2f7", // Blue
		Secondary:  "#bb9af7", // Purple
		Good:       "#9ece6a", // Green
		Bad:        "#f7768e", // Red
		Label:      "#565f89", // Comment
		Muted:      "#9aa5ce", // Foreground dim
		Border:     "#7dcfff", // Cyan
		SelectedBg: "#292e42", // bg highlight
	},
	"catppuccin": {
		Name:       "Catppuccin",
		Accent:     "#cba6f7", // Mauve
		Secondary:  "#f5c2e7", // Pink
		Good:       "#a6e3a1", // Green
		Bad:        "#f38ba8", // Red
		Label:      "#6c7086", // Overlay0
		Muted:      "#9399b2", // Overlay2
		Border:     "#89b4fa", // Blue
		SelectedBg: "#313244", // Surface0
	},
}

// ThemeNames returns the available theme names, sorted
func ThemeNames() []string {
	names := make([]string, 0, len(Themes))
	for name := range Themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// LookupTheme returns the named theme or an error listing the valid names
func LookupTheme(name string) (Theme, error) {
	if name == "" {
		return Themes["default"], nil
	}
	theme, ok := Themes[name]
	if !ok {
		return Theme{}, fmt.Errorf("unknown theme %q (available: %v)", name, ThemeNames())
	}
	return theme, nil
}

// Styles holds the lipgloss styles generated from a Theme
type Styles struct {
	Title    lipgloss.Style
	Label    lipgloss.Style
	Value    lipgloss.Style
	Good     lipgloss.Style
	Bad      lipgloss.Style
	Muted    lipgloss.Style
	Selected lipgloss.Style
	Box      lipgloss.Style
	Samples  lipgloss.Style
	Search   lipgloss.Style
	Help     lipgloss.Style
}

// NewStyles builds the styles for theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)).
			MarginBottom(1),
		Label: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Label)),
		Value: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Good)),
		Good: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Good)),
		Bad: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Bad)),
		Muted: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Muted)),
		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(theme.Accent)).
			Background(lipgloss.Color(theme.SelectedBg)),
		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Border)).
			Padding(1, 2),
		Samples: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Secondary)).
			Padding(1, 2),
		Search: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(theme.Secondary)).
			Padding(0, 1).
			MarginBottom(1),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color(theme.Label)).
			MarginTop(1),
	}
}
