package main

import (
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"kbicons/icon"
	"kbicons/palette"
)

func TestRenderPreviewShape(t *testing.T) {
	th, _ := palette.Lookup(palette.Enabled)
	img, err := icon.Compose(previewSize, th)
	if err != nil {
		t.Fatal(err)
	}
	out := renderPreview(img)
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != previewSize/2 {
		t.Fatalf("got %d lines, want %d", len(lines), previewSize/2)
	}
	for i, line := range lines {
		if w := ansi.StringWidth(line); w != previewSize {
			t.Fatalf("line %d is %d cells wide, want %d", i, w, previewSize)
		}
	}
}

func TestRenderPreviewOddHeight(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 3, 3))
	for y := 0; y < 3; y++ {
		for x := 0; x < 3; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 10, A: 255})
		}
	}
	out := ansi.Strip(renderPreview(img))
	if out != "███\n███\n" {
		t.Errorf("got %q", out)
	}
}
