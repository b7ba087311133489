package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/exgen-dev/exgen/pkg/version"
)

// Shared lipgloss styles for command output.
var (
	cliPrimary = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#3C873A", Dark: "#68A063"}).
			Bold(true)
	cliSuccess = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#059669", Dark: "#10B981"})
	cliWarn = lipgloss.NewStyle().
		Foreground(lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#F59E0B"})
	cliMuted = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6B7280"})
	cliBorder = lipgloss.AdaptiveColor{Light: "#D1D5DB", Dark: "#4B5563"}
)

// printWelcome prints the banner shown before the wizard starts.
func printWelcome(w io.Writer) {
	_, _ = fmt.Fprintln(w, cliPrimary.Render("exgen "+version.GetVersion()))
	_, _ = fmt.Fprintln(w, cliMuted.Render("Let's scaffold an Express.js server."))
	_, _ = fmt.Fprintln(w)
}

// kvPair is a single key/value line in aligned output blocks.
type kvPair struct {
	key   string
	value string
}

// renderKeyValueLines renders pairs as aligned "key  value" lines.
func renderKeyValueLines(pairs []kvPair) string {
	width := 0
	for _, p := range pairs {
		if len(p.key) > width {
			width = len(p.key)
		}
	}

	lines := make([]string, 0, len(pairs))
	for _, p := range pairs {
		key := fmt.Sprintf("%-*s", width, p.key)
		lines = append(lines, cliMuted.Render(key)+"  "+p.value)
	}
	return strings.Join(lines, "\n")
}

// renderSuccessCard renders a rounded-border card with a success title
// followed by detail blocks.
func renderSuccessCard(title string, details ...string) string {
	content := cliSuccess.Render("✓ " + title)
	for _, d := range details {
		if d == "" {
			continue
		}
		content += "\n\n" + d
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(cliBorder).
		Padding(0, 2)
	return box.Render(content)
}

// nextStepsMarkdown builds the post-generation instructions.
func nextStepsMarkdown(projectName string) string {
	return fmt.Sprintf("**Next steps**\n\n```sh\ncd %s\nnpm install\nnpm run dev\n```\n", projectName)
}

// renderNextSteps renders the next-steps block as terminal markdown,
// falling back to plain text when rendering fails.
func renderNextSteps(projectName string) string {
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(0),
	)
	if err != nil {
		return plainNextSteps(projectName)
	}

	out, err := renderer.Render(nextStepsMarkdown(projectName))
	if err != nil {
		return plainNextSteps(projectName)
	}
	return strings.TrimRight(out, "\n")
}

// plainNextSteps is the unstyled fallback for renderNextSteps.
func plainNextSteps(projectName string) string {
	return strings.Join([]string{
		"Next steps:",
		"  cd " + projectName,
		"  npm install",
		"  npm run dev",
	}, "\n")
}
