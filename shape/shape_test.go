package shape

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

var (
	white = color.RGBA{255, 255, 255, 255}
	black = color.RGBA{0, 0, 0, 255}
	red   = color.RGBA{255, 0, 0, 255}
	blue  = color.RGBA{0, 0, 255, 255}
)

func canvas(size int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(img, img.Bounds(), image.NewUniform(white), image.Point{}, draw.Src)
	return img
}

func TestBoxHelpers(t *testing.T) {
	b := Box{2, 2, 9, 9}
	if got := b.Inset(3); got != (Box{5, 5, 6, 6}) {
		t.Errorf("Inset = %v", got)
	}
	if !b.Inset(4).Empty() {
		t.Error("Inset(4) should be empty")
	}
	if got := b.Offset(1, -2); got != (Box{3, 0, 10, 7}) {
		t.Errorf("Offset = %v", got)
	}
	if got := Around(image.Pt(5, 5), 2); got != (Box{3, 3, 7, 7}) {
		t.Errorf("Around = %v", got)
	}
	if !b.Contains(9, 9) || b.Contains(10, 9) {
		t.Error("Contains should be inclusive")
	}
}

func TestRectangleOutline(t *testing.T) {
	img := canvas(20)
	p := NewPainter(img)
	p.Rectangle(Box{2, 2, 17, 17}, red, blue, 2)

	if got := img.RGBAAt(2, 2); got != blue {
		t.Errorf("outline corner = %v, want blue", got)
	}
	if got := img.RGBAAt(3, 10); got != blue {
		t.Errorf("outline edge = %v, want blue", got)
	}
	if got := img.RGBAAt(10, 10); got != red {
		t.Errorf("interior = %v, want red", got)
	}
	if got := img.RGBAAt(1, 1); got != white {
		t.Errorf("outside = %v, want white", got)
	}
	if got := img.RGBAAt(18, 10); got != white {
		t.Errorf("right of box = %v, want white", got)
	}
}

func TestRectangleZeroWidthHasNoOutline(t *testing.T) {
	img := canvas(10)
	NewPainter(img).Rectangle(Box{1, 1, 8, 8}, red, blue, 0)
	if got := img.RGBAAt(1, 1); got != red {
		t.Errorf("edge = %v, want red", got)
	}
}

func TestEllipse(t *testing.T) {
	img := canvas(32)
	p := NewPainter(img)
	p.Ellipse(Box{0, 0, 31, 31}, red, blue, 3)

	if got := img.RGBAAt(16, 16); got != red {
		t.Errorf("center = %v, want red", got)
	}
	if got := img.RGBAAt(16, 1); got != blue {
		t.Errorf("top ring = %v, want blue", got)
	}
	if got := img.RGBAAt(0, 0); got != white {
		t.Errorf("corner = %v, want white", got)
	}
}

func TestEllipseEmptyBoxIsNoop(t *testing.T) {
	img := canvas(8)
	NewPainter(img).Ellipse(Box{5, 5, 2, 2}, red, blue, 1)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			if img.RGBAAt(x, y) != white {
				t.Fatalf("pixel (%d,%d) changed", x, y)
			}
		}
	}
}

func TestLine(t *testing.T) {
	img := canvas(20)
	NewPainter(img).Line(image.Pt(2, 10), image.Pt(17, 10), black, 1)
	for x := 2; x <= 17; x++ {
		if got := img.RGBAAt(x, 10); got != black {
			t.Errorf("pixel (%d,10) = %v, want black", x, got)
		}
	}
	if got := img.RGBAAt(10, 12); got != white {
		t.Errorf("off-line pixel = %v, want white", got)
	}
}

func TestLineSubPixelWidth(t *testing.T) {
	img := canvas(10)
	NewPainter(img).Line(image.Pt(1, 5), image.Pt(8, 5), black, 0)
	if got := img.RGBAAt(4, 5); got != black {
		t.Errorf("zero-width line pixel = %v, want black", got)
	}
}

func TestPolygon(t *testing.T) {
	img := canvas(20)
	pts := []image.Point{{2, 2}, {17, 2}, {2, 17}}
	NewPainter(img).Polygon(pts, red, blue, 0)
	if got := img.RGBAAt(5, 5); got != red {
		t.Errorf("inside = %v, want red", got)
	}
	if got := img.RGBAAt(16, 16); got != white {
		t.Errorf("outside = %v, want white", got)
	}
}

func TestPolygonOutline(t *testing.T) {
	img := canvas(20)
	pts := []image.Point{{2, 2}, {17, 2}, {2, 17}}
	NewPainter(img).Polygon(pts, red, blue, 2)
	if got := img.RGBAAt(10, 2); got != blue {
		t.Errorf("top edge = %v, want blue", got)
	}
	if got := img.RGBAAt(6, 6); got != red {
		t.Errorf("inside = %v, want red", got)
	}
}

func TestRoundedMask(t *testing.T) {
	m := RoundedMask(48, 48, 12)
	if got := m.AlphaAt(0, 0).A; got != 0 {
		t.Errorf("corner alpha = %d, want 0", got)
	}
	if got := m.AlphaAt(47, 47).A; got != 0 {
		t.Errorf("far corner alpha = %d, want 0", got)
	}
	if got := m.AlphaAt(24, 24).A; got != 255 {
		t.Errorf("center alpha = %d, want 255", got)
	}
	if got := m.AlphaAt(24, 0).A; got != 255 {
		t.Errorf("top edge alpha = %d, want 255", got)
	}
}

func TestRoundedMaskZeroRadius(t *testing.T) {
	m := RoundedMask(16, 16, 0)
	if got := m.AlphaAt(0, 0).A; got != 255 {
		t.Errorf("corner alpha = %d, want 255", got)
	}
}
