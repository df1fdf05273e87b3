package kiosk

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"waste-dashboard/internal/domain/access"
	"waste-dashboard/internal/domain/bin"
)

const barWidth = 20

func (m Model) View() string {
	switch m.decision.Outcome {
	case access.OutcomePending:
		return fmt.Sprintf("\n  %s Checking session...\n", m.spinner.View())
	case access.OutcomeDeny:
		return m.styles.Error.Render("\n  Login required.") + "\n" +
			m.styles.Help.Render("  Start the kiosk with --email and --password.") + "\n"
	}
	if m.quitting {
		return ""
	}

	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")
	b.WriteString(m.renderBins())
	if m.view == access.ViewAdmin {
		b.WriteString("\n")
		b.WriteString(m.renderSummary())
	}
	b.WriteString("\n")
	b.WriteString(m.renderHelp())
	return b.String()
}

func (m Model) renderHeader() string {
	title := "Bin Display"
	if m.view == access.ViewAdmin {
		title = "Waste Dashboard"
	}
	parts := []string{m.styles.Title.Render(title)}

	if m.sess != nil {
		who := fmt.Sprintf("%s (%s)", m.sess.Email(), m.sess.Role())
		if unit := m.sess.OrgUnit(); unit != nil {
			label := unit.Name()
			if label == "" {
				label = unit.ID()
			}
			who += fmt.Sprintf(" · %s %s", unit.Kind(), label)
			if m.sess.IsOverridden() {
				who += m.styles.Warning.Render(" [override]")
			}
		}
		parts = append(parts, m.styles.Subtitle.Render(who))
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, parts[0], " ", strings.Join(parts[1:], " "))
}

func (m Model) renderBins() string {
	s := m.snapshot
	switch {
	case m.feed == nil || s.Idle:
		return m.styles.Warning.Render("No branch assigned to this session.")
	case s.Loading:
		return fmt.Sprintf("%s Loading bins...", m.spinner.View())
	case s.Err != nil:
		return m.styles.Error.Render("Failed to load bins.") + " " + m.styles.Help.Render("press r to retry")
	case len(s.Bins) == 0:
		return m.styles.Subtitle.Render("No bins at this branch.")
	}

	nameWidth := 0
	for _, b := range s.Bins {
		nameWidth = max(nameWidth, lipgloss.Width(b.Name))
	}

	var rows []string
	for _, b := range s.Bins {
		rows = append(rows, m.renderBin(b, nameWidth))
	}
	rows = append(rows, m.styles.Label.Render(fmt.Sprintf("Total %.1f kg", s.Bins.TotalWeight())))
	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (m Model) renderBin(b bin.Bin, nameWidth int) string {
	cat := b.Category()
	name := lipgloss.NewStyle().Width(nameWidth).Render(b.Name)
	weight := fmt.Sprintf("%7.1f kg", b.CurrentWeight)

	line := fmt.Sprintf("%s %s %s", swatch(cat.Color), name, m.styles.Value.Render(weight))
	if b.Capacity > 0 {
		line += " " + fillBar(b.CurrentWeight/b.Capacity, cat.Color) +
			fmt.Sprintf(" / %.0f kg", b.Capacity)
	}
	if !b.IsActive {
		return m.styles.Inactive.Render(line + " (inactive)")
	}
	return line
}

func (m Model) renderSummary() string {
	if m.summaryRM == nil {
		if m.summaryErr != nil {
			return m.styles.Error.Render("Waste summary unavailable.")
		}
		return m.styles.Subtitle.Render("Waste summary loading...")
	}

	rows := []string{m.styles.Label.Render("Waste by category")}
	for _, c := range m.summaryRM.Categories {
		rows = append(rows, fmt.Sprintf("%s %-18s %8.1f kg", swatch(c.Color), c.Category, c.Weight))
	}
	rows = append(rows, fmt.Sprintf("  %-18s %8.1f kg", "Total", m.summaryRM.TotalWeight))
	if m.summaryErr != nil {
		rows = append(rows, m.styles.Warning.Render("(stale: last refresh failed)"))
	}
	return m.styles.Panel.Render(strings.Join(rows, "\n"))
}

func (m Model) renderHelp() string {
	return m.styles.Help.Render(fmt.Sprintf("%s %s • %s %s",
		m.keys.Refresh.Help().Key, m.keys.Refresh.Help().Desc,
		m.keys.Quit.Help().Key, m.keys.Quit.Help().Desc))
}

func fillBar(ratio float64, color string) string {
	ratio = min(max(ratio, 0), 1)
	filled := int(ratio*barWidth + 0.5)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color(color))
	return style.Render(strings.Repeat("█", filled)) + strings.Repeat("░", barWidth-filled)
}
