package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/codevet/codevet/internal/domain"
)

// ── Claude-inspired warm palette ──
var (
	accent  = lipgloss.Color("#D97706") // amber
	fg      = lipgloss.Color("#E8E6E3") // warm light gray
	dim     = lipgloss.Color("#6B7280") // muted gray
	faint   = lipgloss.Color("#3F3F46") // very dim
	success = lipgloss.Color("#22C55E") // green
	danger  = lipgloss.Color("#EF4444") // red
	warning = lipgloss.Color("#F59E0B") // amber-yellow
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(0, 2).
			Width(68)

	statusStyles = map[domain.Status]lipgloss.Style{
		domain.StatusPass:  lipgloss.NewStyle().Bold(true).Foreground(success),
		domain.StatusFail:  lipgloss.NewStyle().Bold(true).Foreground(danger),
		domain.StatusError: lipgloss.NewStyle().Bold(true).Foreground(warning),
	}

	dimStyle   = lipgloss.NewStyle().Foreground(dim)
	faintStyle = lipgloss.NewStyle().Foreground(faint)
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(fg)
)

// RenderReport renders one validation report for the terminal. The report
// text is passed through untouched below the styled header; toolchain
// output is never reformatted.
func RenderReport(rep *domain.Report) string {
	var b strings.Builder

	title := headerStyle.Render("codevet")
	status := statusStyle(rep.Status).Render(strings.ToUpper(string(rep.Status)))

	header := title + "  " + status
	if rep.Language != "" {
		header += "  " + dimStyle.Render(rep.Language.DisplayName())
	}
	b.WriteString(boxStyle.Render(header))
	b.WriteString("\n\n")

	if rep.File != "" {
		b.WriteString(dimStyle.Render(rep.File))
		b.WriteString("\n\n")
	}

	b.WriteString(rep.Text)
	b.WriteString("\n")

	if rep.Hint != "" {
		b.WriteString("\n")
		b.WriteString(dimStyle.Render("hint: " + rep.Hint))
		b.WriteString("\n")
	}
	if rep.Commit != "" {
		ref := rep.Commit
		if len(ref) > 12 {
			ref = ref[:12]
		}
		if rep.Branch != "" {
			ref = rep.Branch + "@" + ref
		}
		b.WriteString(faintStyle.Render(ref))
		b.WriteString("\n")
	}

	return b.String()
}

// RenderHistory renders persisted validation runs, newest last.
func RenderHistory(entries []domain.HistoryEntry) string {
	if len(entries) == 0 {
		return dimStyle.Render("No validation history.") + "\n"
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Validation history"))
	b.WriteString("\n\n")
	for _, e := range entries {
		status := statusStyle(e.Status).Render(fmt.Sprintf("%-5s", e.Status))
		line := fmt.Sprintf("%s  %s  %s", e.Timestamp.Format("2006-01-02 15:04:05"), status, e.File)
		if e.Branch != "" {
			line += "  " + faintStyle.Render(e.Branch)
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

// RenderLanguages renders the supported-language table with the commands
// each toolchain resolves to.
func RenderLanguages(cfg domain.ToolchainConfig) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Supported languages"))
	b.WriteString("\n\n")

	for _, lang := range domain.SupportedLanguages() {
		strat, _ := domain.StrategyFor(lang)
		check := strat.CheckCommand(cfg, "<file>")
		b.WriteString(fmt.Sprintf("%-12s %s  %s\n",
			lang.DisplayName(),
			dimStyle.Render(strat.Extension),
			faintStyle.Render(check.String()),
		))
	}
	return b.String()
}

func statusStyle(s domain.Status) lipgloss.Style {
	if style, ok := statusStyles[s]; ok {
		return style
	}
	return dimStyle
}
