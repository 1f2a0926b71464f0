package styles

import "github.com/charmbracelet/lipgloss"

var (
	// Colors - ocean palette, readable on both black and dark surfaces
	PrimaryColor   = lipgloss.Color("#38BDF8") // Sky blue
	SecondaryColor = lipgloss.Color("#34D399") // Green
	WarningColor   = lipgloss.Color("#FBBF24") // Amber
	ErrorColor     = lipgloss.Color("#F87171") // Red
	MutedColor     = lipgloss.Color("#9CA3AF") // Gray
	SurfaceColor   = lipgloss.Color("#1E293B") // Dark surface
	TextColor      = lipgloss.Color("#F8FAFC") // Light text
	BorderColor    = lipgloss.Color("#64748B") // Slate

	// Convenience styles for colors
	Primary   = lipgloss.NewStyle().Foreground(PrimaryColor)
	Secondary = lipgloss.NewStyle().Foreground(SecondaryColor)
	Warning   = lipgloss.NewStyle().Foreground(WarningColor)
	Error     = lipgloss.NewStyle().Foreground(ErrorColor)
	Muted     = lipgloss.NewStyle().Foreground(MutedColor)
	Text      = lipgloss.NewStyle().Foreground(TextColor)

	// Header
	Header = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor).
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(BorderColor).
		MarginBottom(1).
		PaddingBottom(1)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(PrimaryColor)

	Subtitle = lipgloss.NewStyle().
			Foreground(MutedColor).
			Italic(true)

	// Player panel
	PlayerBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(BorderColor).
			Padding(1, 2)

	PlayerErrorBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Foreground(ErrorColor).
			Padding(1, 2)

	ProgressFilled = lipgloss.NewStyle().Foreground(PrimaryColor)
	ProgressEmpty  = lipgloss.NewStyle().Foreground(BorderColor)

	// Caption area
	Caption = lipgloss.NewStyle().
		Foreground(TextColor).
		MarginTop(1)

	// Position indicator dots
	DotActive   = lipgloss.NewStyle().Bold(true).Foreground(PrimaryColor)
	DotInactive = lipgloss.NewStyle().Foreground(BorderColor)
	DotOverflow = lipgloss.NewStyle().Foreground(MutedColor)

	// Transient notice line
	Notice = lipgloss.NewStyle().
		Foreground(WarningColor).
		MarginTop(1)

	// Error panel for initial-load failure
	ErrorPanel = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ErrorColor).
			Foreground(ErrorColor).
			Padding(1, 2).
			MarginTop(1)

	// Pull-to-refresh indicator
	PullBar = lipgloss.NewStyle().
		Foreground(SecondaryColor)

	// Reaction picker overlay
	PickerBox = lipgloss.NewStyle().
			Border(lipgloss.DoubleBorder()).
			BorderForeground(PrimaryColor).
			Padding(0, 1).
			MarginTop(1)

	PickerSelected = lipgloss.NewStyle().
			Bold(true).
			Background(SurfaceColor).
			Padding(0, 1)

	PickerOption = lipgloss.NewStyle().
			Padding(0, 1)

	// Help bar
	HelpBar = lipgloss.NewStyle().
		Foreground(MutedColor).
		MarginTop(1)

	HelpKey = lipgloss.NewStyle().
		Bold(true).
		Foreground(SecondaryColor)
)
