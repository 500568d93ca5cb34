package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/sozercan/truthlens/internal/analysis"
)

var (
	lowColor     = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"}
	mediumColor  = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"}
	highColor    = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#EF4444"}
	neutralColor = lipgloss.AdaptiveColor{Light: "#1E40AF", Dark: "#3B82F6"}
	mutedColor   = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#9CA3AF"}
)

// Terminal renders results for the command line.
type Terminal struct {
	color bool

	verdict lipgloss.Style
	badge   lipgloss.Style
	heading lipgloss.Style
	alert   lipgloss.Style
}

func NewTerminal(color bool) *Terminal {
	return &Terminal{
		color:   color,
		verdict: lipgloss.NewStyle().Bold(true),
		badge:   lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("#FFFFFF")),
		heading: lipgloss.NewStyle().Bold(true).Foreground(mutedColor),
		alert:   lipgloss.NewStyle().Bold(true).Foreground(highColor),
	}
}

func (t *Terminal) style(s lipgloss.Style, text string) string {
	if !t.color {
		return text
	}
	return s.Render(text)
}

func severityColor(s analysis.Severity) lipgloss.AdaptiveColor {
	switch s {
	case analysis.SeverityLow:
		return lowColor
	case analysis.SeverityMedium:
		return mediumColor
	default:
		return highColor
	}
}

// Result formats one analysis the same way the results panel lays it out.
func (t *Terminal) Result(kind analysis.Kind, res analysis.Result) string {
	var b strings.Builder

	badge := t.badge.Background(neutralColor)
	unit := "Authentic"
	if kind != analysis.VideoURL {
		badge = t.badge.Background(severityColor(res.Severity()))
		unit = "Risk"
	}

	b.WriteString(t.style(t.verdict, res.Verdict))
	b.WriteString("  ")
	b.WriteString(t.style(badge, fmt.Sprintf("%s%% %s", res.ConfidenceText(), unit)))
	b.WriteString("\n")

	writeList(&b, t.style(t.heading, "⚠ Key Reasons:"), res.KeyReasons)
	writeList(&b, t.style(t.heading, "Recommendations:"), res.Recommendations)

	return b.String()
}

func writeList(b *strings.Builder, heading string, items []string) {
	if len(items) == 0 {
		return
	}
	b.WriteString("\n")
	b.WriteString(heading)
	b.WriteString("\n")
	for _, item := range items {
		b.WriteString("  • ")
		b.WriteString(item)
		b.WriteString("\n")
	}
}

// Alert formats a user-facing alert line.
func (t *Terminal) Alert(msg string) string {
	return t.style(t.alert, msg)
}

// TerminalSink prints results to a writer.
type TerminalSink struct {
	Terminal *Terminal
	Out      io.Writer
}

func (s TerminalSink) Show(kind analysis.Kind, res analysis.Result) error {
	_, err := io.WriteString(s.Out, s.Terminal.Result(kind, res))
	return err
}
