package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kbicons/icon"
	"kbicons/palette"
)

const ruleWidth = 50

// reporter prints human-readable progress. Styling is applied only when
// the output is a terminal.
type reporter struct {
	w      io.Writer
	styled bool

	title lipgloss.Style
	ok    lipgloss.Style
	dim   lipgloss.Style
}

func newReporter(w io.Writer, styled bool) *reporter {
	return &reporter{
		w:      w,
		styled: styled,
		title:  lipgloss.NewStyle().Bold(true),
		ok:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		dim:    lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

func (r *reporter) render(s lipgloss.Style, text string) string {
	if !r.styled {
		return text
	}
	return s.Render(text)
}

func (r *reporter) rule() {
	fmt.Fprintln(r.w, r.render(r.dim, strings.Repeat("=", ruleWidth)))
}

func (r *reporter) Banner() {
	fmt.Fprintln(r.w, r.render(r.title, "Creating icons..."))
	r.rule()
}

func (r *reporter) Created(path string, size int) {
	fmt.Fprintf(r.w, "%s Created %s (%dx%d)\n", r.render(r.ok, "✓"), path, size, size)
}

// Summary prints the closing line and a legend of what was drawn.
func (r *reporter) Summary(themes []palette.Theme, sizes []int) {
	r.rule()
	fmt.Fprintln(r.w, r.render(r.ok, "✓ All icons created!"))

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.render(r.title, "Icon design:"))
	if len(themes) > 0 {
		bg := themes[0]
		fmt.Fprintf(r.w, "- Light background (%s → %s), suited to dark toolbars\n", palette.Hex(bg.BgStart), palette.Hex(bg.BgEnd))
	}
	for _, th := range themes {
		fmt.Fprintf(r.w, "- %s: chat bubble and books (%s), outline %s\n", th.Name, palette.Hex(th.Primary), palette.Hex(th.Outline))
	}
	fmt.Fprintf(r.w, "- Full detail from %dpx, connecting line from %dpx\n", icon.FullMin, icon.ConnectorMin)

	fmt.Fprintln(r.w)
	fmt.Fprintln(r.w, r.render(r.title, "Icon files:"))
	for _, size := range sizes {
		names := make([]string, len(themes))
		for i, th := range themes {
			names[i] = icon.FileName(size, th)
		}
		fmt.Fprintf(r.w, "- %s\n", strings.Join(names, " / "))
	}
}
