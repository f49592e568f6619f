package stdout

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/crimson-sun/topics/internal/engine/reporter"
	"github.com/crimson-sun/topics/internal/model"
)

// Theme defines the colours of the styled report.
type Theme struct {
	Primary lipgloss.Color // topic headings and separators
	Dim     lipgloss.Color // outliers, scores and the summary line
}

// DefaultTheme is a bright green theme.
var DefaultTheme = Theme{
	Primary: lipgloss.Color("#00ff9f"),
	Dim:     lipgloss.Color("#6e7681"),
}

// Styles holds the styles derived from a theme.
type Styles struct {
	Heading lipgloss.Style
	Outlier lipgloss.Style
	Word    lipgloss.Style
	Score   lipgloss.Style
	Border  lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t Theme) Styles {
	return Styles{
		Heading: lipgloss.NewStyle().Bold(true).Foreground(t.Primary),
		Outlier: lipgloss.NewStyle().Italic(true).Foreground(t.Dim),
		Word:    lipgloss.NewStyle().PaddingLeft(2),
		Score:   lipgloss.NewStyle().Foreground(t.Dim),
		Border:  lipgloss.NewStyle().Foreground(t.Primary),
	}
}

const ruleWidth = 50

// Render lays the report out like the plain listing, with headings
// coloured and word scores aligned in a second column when withScores is set.
func (s Styles) Render(r model.Report, withScores bool) string {
	rule := s.Border.Render(strings.Repeat("─", ruleWidth))

	var lines []string
	for _, t := range r.Topics {
		lines = append(lines, rule)
		heading := s.Heading
		if t.Outlier {
			heading = s.Outlier
		}
		lines = append(lines, heading.Render(reporter.Heading(t)))

		width := 0
		for _, ws := range t.Words {
			width = max(width, lipgloss.Width(ws.Word))
		}
		for _, ws := range t.Words {
			line := "• " + ws.Word
			if withScores {
				pad := strings.Repeat(" ", width-lipgloss.Width(ws.Word)+2)
				line += pad + s.Score.Render(fmt.Sprintf("%.4f", ws.Score))
			}
			lines = append(lines, s.Word.Render(line))
		}
	}
	lines = append(lines, rule)
	lines = append(lines, s.Score.Render(fmt.Sprintf("%d topics, %d terms, %d documents", len(r.Topics), r.Vocabulary, r.Corpus)))
	return strings.Join(lines, "\n") + "\n"
}
