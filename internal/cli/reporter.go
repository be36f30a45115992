package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/aalvaropc/recordemit/internal/ports"
)

// reporter prints progress lines, coloring the marks only when w is a terminal.
type reporter struct {
	w     io.Writer
	check lipgloss.Style
	cross lipgloss.Style
}

var _ ports.Reporter = (*reporter)(nil)

func newReporter(w io.Writer) *reporter {
	r := lipgloss.NewRenderer(w)
	return &reporter{
		w:     w,
		check: r.NewStyle().Foreground(lipgloss.Color("42")).Bold(true),
		cross: r.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

func (r *reporter) Info(msg string) {
	fmt.Fprintln(r.w, msg)
}

func (r *reporter) Success(msg string) {
	fmt.Fprintf(r.w, "%s %s\n", r.check.Render("✓"), msg)
}

func (r *reporter) Failure(msg string) {
	fmt.Fprintf(r.w, "%s %s\n", r.cross.Render("✗"), msg)
}
