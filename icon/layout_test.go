package icon

import (
	"errors"
	"image"
	"testing"

	"kbicons/shape"
)

func mustLayout(t *testing.T, size int) Plan {
	t.Helper()
	p, err := Layout(size)
	if err != nil {
		t.Fatalf("Layout(%d): %v", size, err)
	}
	return p
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		size int
		want Tier
	}{
		{1, TierMinimal},
		{15, TierMinimal},
		{16, TierReduced},
		{47, TierReduced},
		{48, TierFull},
		{128, TierFull},
		{512, TierFull},
	}
	for _, c := range cases {
		if got := TierFor(c.size); got != c.want {
			t.Errorf("TierFor(%d) = %v, want %v", c.size, got, c.want)
		}
	}
}

func TestLayoutBookBoundary(t *testing.T) {
	if got := len(mustLayout(t, 15).Books); got != 0 {
		t.Errorf("size 15: %d books, want 0", got)
	}
	if got := len(mustLayout(t, 16).Books); got != 2 {
		t.Errorf("size 16: %d books, want 2", got)
	}
	if got := len(mustLayout(t, 47).Books); got != 2 {
		t.Errorf("size 47: %d books, want 2", got)
	}
	if got := len(mustLayout(t, 48).Books); got != 3 {
		t.Errorf("size 48: %d books, want 3", got)
	}
}

func TestLayoutConnectorBoundary(t *testing.T) {
	for _, size := range []int{16, 47, 48, 63} {
		if mustLayout(t, size).Connector != nil {
			t.Errorf("size %d: unexpected connector", size)
		}
	}
	for _, size := range []int{64, 128} {
		if mustLayout(t, size).Connector == nil {
			t.Errorf("size %d: missing connector", size)
		}
	}
}

func TestLayoutCornerRadius(t *testing.T) {
	if r := mustLayout(t, 47).CornerRadius; r != 0 {
		t.Errorf("size 47: radius %d, want 0", r)
	}
	if r := mustLayout(t, 48).CornerRadius; r != 4 {
		t.Errorf("size 48: radius %d, want 4", r)
	}
	if r := mustLayout(t, 128).CornerRadius; r != 12 {
		t.Errorf("size 128: radius %d, want 12", r)
	}
}

func TestLayout128(t *testing.T) {
	p := mustLayout(t, 128)
	if p.Scale != 1 {
		t.Fatalf("scale = %f", p.Scale)
	}
	b := p.Bubble
	if b.Outer != (shape.Box{X0: 14, Y0: 37, X1: 64, Y1: 87}) {
		t.Errorf("bubble outer = %v", b.Outer)
	}
	if b.Inner != (shape.Box{X0: 17, Y0: 40, X1: 61, Y1: 84}) {
		t.Errorf("bubble inner = %v", b.Inner)
	}
	if b.OutlineWidth != 2 || b.TailWidth != 1 {
		t.Errorf("widths = %d, %d", b.OutlineWidth, b.TailWidth)
	}
	wantDots := []image.Point{{29, 56}, {39, 62}, {49, 68}}
	if len(b.Dots) != 3 {
		t.Fatalf("%d dots", len(b.Dots))
	}
	for i, d := range b.Dots {
		if d.Center() != wantDots[i] || d.X1-d.X0 != 12 {
			t.Errorf("dot %d = %v", i, d)
		}
	}
	wantTail := []image.Point{{57, 74}, {67, 80}, {61, 86}}
	for i, pt := range b.Tail {
		if pt != wantTail[i] {
			t.Errorf("tail %d = %v, want %v", i, pt, wantTail[i])
		}
	}

	wantBooks := []shape.Box{
		{X0: 75, Y0: 54, X1: 103, Y1: 90},
		{X0: 78, Y0: 51, X1: 106, Y1: 87},
		{X0: 81, Y0: 48, X1: 109, Y1: 84},
	}
	for i, bk := range p.Books {
		if bk.Rect != wantBooks[i] {
			t.Errorf("book %d = %v, want %v", i, bk.Rect, wantBooks[i])
		}
		if (bk.Divider != nil) != (i < 2) {
			t.Errorf("book %d divider = %v", i, bk.Divider)
		}
	}
	d := p.Books[0].Divider
	if d.From != image.Pt(80, 72) || d.To != image.Pt(98, 72) || d.Width != 2 {
		t.Errorf("divider = %+v", *d)
	}

	c := p.Connector
	if c.From != image.Pt(64, 77) || c.To != image.Pt(75, 60) || c.Width != 3 {
		t.Errorf("connector = %+v", *c)
	}
}

func TestLayoutScalesOffsets(t *testing.T) {
	p := mustLayout(t, 16)
	if p.Tier != TierReduced {
		t.Fatalf("tier = %v", p.Tier)
	}
	// int(18 * 0.125) = 2, centered on (8 - int(8*0.125), 8) = (7, 8).
	if p.Bubble.Outer != (shape.Box{X0: 6, Y0: 7, X1: 8, Y1: 9}) {
		t.Errorf("bubble = %v", p.Bubble.Outer)
	}
	for i, bk := range p.Books {
		if bk.Rect != (shape.Box{X0: 9, Y0: 8, X1: 9, Y1: 8}) {
			t.Errorf("book %d = %v", i, bk.Rect)
		}
		if bk.OutlineWidth != 0 {
			t.Errorf("book %d outline = %d", i, bk.OutlineWidth)
		}
	}
}

func TestLayoutMinimalCentered(t *testing.T) {
	p := mustLayout(t, 8)
	if p.Tier != TierMinimal || len(p.Bubble.Dots) != 1 || len(p.Bubble.Tail) != 0 {
		t.Fatalf("plan = %+v", p)
	}
	if got := p.Bubble.Dots[0].Center(); got != image.Pt(4, 4) {
		t.Errorf("dot center = %v", got)
	}
}

func TestLayoutInvalidSize(t *testing.T) {
	if _, err := Layout(0); !errors.Is(err, ErrInvalidSize) {
		t.Errorf("err = %v, want ErrInvalidSize", err)
	}
}
