package main

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"kbicons/palette"
)

// previewSize is the icon size shown by -preview: the smallest full-detail tier.
const previewSize = 48

type cellKey struct {
	top, bot color.RGBA
}

// renderPreview draws img as terminal half-block art, two pixel rows per
// line: the upper pixel is the foreground of "▀", the lower its background.
func renderPreview(img image.Image) string {
	b := img.Bounds()
	styles := make(map[cellKey]lipgloss.Style)

	var result strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := rgba(img.At(x, y))
			bot := top
			if y+1 < b.Max.Y {
				bot = rgba(img.At(x, y+1))
			}
			key := cellKey{top, bot}
			s, ok := styles[key]
			if !ok {
				s = lipgloss.NewStyle().Foreground(lipgloss.Color(palette.Hex(top)))
				if top != bot {
					s = s.Background(lipgloss.Color(palette.Hex(bot)))
				}
				styles[key] = s
			}
			if top == bot {
				result.WriteString(s.Render("█"))
			} else {
				result.WriteString(s.Render("▀"))
			}
		}
		result.WriteString("\n")
	}
	return result.String()
}

func rgba(c color.Color) color.RGBA {
	return color.RGBAModel.Convert(c).(color.RGBA)
}
