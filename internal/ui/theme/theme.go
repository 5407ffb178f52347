package theme

import "charm.land/lipgloss/v2"

// Soft candy colors around a panda-friendly pink.
var (
	Primary      = lipgloss.Color("#EC4899") // pink
	Secondary    = lipgloss.Color("#38BDF8") // sky
	Accent       = lipgloss.Color("#F59E0B") // amber
	Success      = lipgloss.Color("#22C55E")
	Error        = lipgloss.Color("#F43F5E")
	Text         = lipgloss.Color("#F8FAFC")
	TextDim      = lipgloss.Color("#94A3B8")
	BgDark       = lipgloss.Color("#0F172A")
	BgCard       = lipgloss.Color("#1E293B")
	Border       = lipgloss.Color("#334155")
	ArcadeYellow = lipgloss.Color("#FACC15")
)

var (
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
	Pinyin   = lipgloss.NewStyle().Foreground(Secondary)

	// Prompt frames the character or pinyin being asked about.
	Prompt = lipgloss.NewStyle().
		Bold(true).
		Foreground(ArcadeYellow).
		Border(lipgloss.DoubleBorder()).
		BorderForeground(Primary).
		Padding(1, 4)
)

// Option states in menus and answer grids.
var (
	Selected   = lipgloss.NewStyle().Foreground(Primary).Bold(true)
	Unselected = lipgloss.NewStyle().Foreground(Text)
	Correct    = lipgloss.NewStyle().Foreground(Success).Bold(true)
	Incorrect  = lipgloss.NewStyle().Foreground(Error).Bold(true)

	ProgressFilled = lipgloss.NewStyle().Background(Secondary)
	ProgressEmpty  = lipgloss.NewStyle().Background(Border)
)
