package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/julianstephens/habitual/internal/progress"
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Italic(true)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("93"))

	todayStyle = lipgloss.NewStyle().
			Underline(true)

	levelStyles = map[progress.Level]lipgloss.Style{
		progress.LevelNone:     lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		progress.LevelLow:      lipgloss.NewStyle().Foreground(lipgloss.Color("54")),
		progress.LevelMedium:   lipgloss.NewStyle().Foreground(lipgloss.Color("55")),
		progress.LevelHigh:     lipgloss.NewStyle().Foreground(lipgloss.Color("56")),
		progress.LevelVeryHigh: lipgloss.NewStyle().Foreground(lipgloss.Color("92")),
		progress.LevelComplete: lipgloss.NewStyle().Foreground(lipgloss.Color("129")),
	}
)

const (
	cellDay    = "■"
	cellFiller = "□"
	cellBlank  = " "
	barWidth   = 30
)
