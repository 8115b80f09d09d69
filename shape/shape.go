// Package shape draws the filled and outlined primitives the icon composer
// is built from. Boxes use inclusive pixel bounds: Box{2, 2, 5, 5} covers
// the 4x4 block of pixels from (2,2) to (5,5).
package shape

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Box is an inclusive pixel bounding box.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Inset shrinks b by n pixels on every side.
func (b Box) Inset(n int) Box {
	return Box{b.X0 + n, b.Y0 + n, b.X1 - n, b.Y1 - n}
}

// Offset moves b by (dx, dy).
func (b Box) Offset(dx, dy int) Box {
	return Box{b.X0 + dx, b.Y0 + dy, b.X1 + dx, b.Y1 + dy}
}

// Empty reports whether b covers no pixels.
func (b Box) Empty() bool {
	return b.X1 < b.X0 || b.Y1 < b.Y0
}

// Contains reports whether pixel (x, y) lies inside b.
func (b Box) Contains(x, y int) bool {
	return x >= b.X0 && x <= b.X1 && y >= b.Y0 && y <= b.Y1
}

// Center returns the middle pixel of b.
func (b Box) Center() image.Point {
	return image.Pt((b.X0+b.X1)/2, (b.Y0+b.Y1)/2)
}

// Around returns the box of half-size r centered on p.
func Around(p image.Point, r int) Box {
	return Box{p.X - r, p.Y - r, p.X + r, p.Y + r}
}

// edges returns the continuous extent of b: pixel x covers [x, x+1).
func (b Box) edges() (x0, y0, x1, y1 float32) {
	return float32(b.X0), float32(b.Y0), float32(b.X1 + 1), float32(b.Y1 + 1)
}

// Painter draws shapes onto a canvas. A zero width means no outline, like
// the toolbar artwork this draws.
type Painter struct {
	dst draw.Image
	z   *vector.Rasterizer
}

// NewPainter returns a Painter that draws onto dst.
func NewPainter(dst draw.Image) *Painter {
	b := dst.Bounds()
	return &Painter{dst: dst, z: vector.NewRasterizer(b.Dx(), b.Dy())}
}

// flush composites the accumulated path in c and clears the rasterizer.
func (p *Painter) flush(c color.Color) {
	b := p.dst.Bounds()
	p.z.DrawOp = draw.Over
	p.z.Draw(p.dst, b, image.NewUniform(c), image.Point{})
	p.z.Reset(b.Dx(), b.Dy())
}

// Ellipse fills the ellipse inscribed in b. With width > 0 the outermost
// width pixels are drawn in outline.
func (p *Painter) Ellipse(b Box, fill, outline color.Color, width int) {
	if b.Empty() {
		return
	}
	if width > 0 && outline != nil {
		ellipsePath(p.z, b)
		p.flush(outline)
		b = b.Inset(width)
		if b.Empty() {
			return
		}
	}
	if fill != nil {
		ellipsePath(p.z, b)
		p.flush(fill)
	}
}

// Rectangle fills b. With width > 0 the outermost width pixels are drawn in
// outline.
func (p *Painter) Rectangle(b Box, fill, outline color.Color, width int) {
	if b.Empty() {
		return
	}
	if width > 0 && outline != nil {
		rectPath(p.z, b)
		p.flush(outline)
		b = b.Inset(width)
		if b.Empty() {
			return
		}
	}
	if fill != nil {
		rectPath(p.z, b)
		p.flush(fill)
	}
}

// Polygon fills the polygon through pts (pixel centers) and strokes its
// edges when width > 0.
func (p *Painter) Polygon(pts []image.Point, fill, outline color.Color, width int) {
	if len(pts) < 3 {
		return
	}
	if fill != nil {
		x, y := center(pts[0])
		p.z.MoveTo(x, y)
		for _, pt := range pts[1:] {
			x, y := center(pt)
			p.z.LineTo(x, y)
		}
		p.z.ClosePath()
		p.flush(fill)
	}
	if width > 0 && outline != nil {
		for i := range pts {
			segmentPath(p.z, pts[i], pts[(i+1)%len(pts)], width)
		}
		p.flush(outline)
	}
}

// Line draws a segment between two pixel centers. Widths below one pixel
// are drawn one pixel wide.
func (p *Painter) Line(from, to image.Point, c color.Color, width int) {
	if width < 1 {
		width = 1
	}
	segmentPath(p.z, from, to, width)
	p.flush(c)
}

// RoundedMask returns a w x h coverage mask shaped as a rounded rectangle
// with corner radius r. A radius of zero gives a plain rectangle.
func RoundedMask(w, h, r int) *image.Alpha {
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if w <= 0 || h <= 0 {
		return mask
	}
	if lim := min(w, h) / 2; r > lim {
		r = lim
	}
	z := vector.NewRasterizer(w, h)
	roundedRectPath(z, 0, 0, float32(w), float32(h), float32(r))
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

func center(pt image.Point) (float32, float32) {
	return float32(pt.X) + 0.5, float32(pt.Y) + 0.5
}

func ellipsePath(z *vector.Rasterizer, b Box) {
	x0, y0, x1, y1 := b.edges()
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	kx, ky := rx*kappa, ry*kappa

	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
}

func rectPath(z *vector.Rasterizer, b Box) {
	x0, y0, x1, y1 := b.edges()
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
}

func roundedRectPath(z *vector.Rasterizer, x0, y0, x1, y1, r float32) {
	if r <= 0 {
		z.MoveTo(x0, y0)
		z.LineTo(x1, y0)
		z.LineTo(x1, y1)
		z.LineTo(x0, y1)
		z.ClosePath()
		return
	}
	k := r * kappa
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-r+k, y0, x1, y0+r-k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-r+k, x1-r+k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+r-k, y1, x0, y1-r+k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+r-k, x0+r-k, y0, x0+r, y0)
	z.ClosePath()
}

// segmentPath adds a width-wide quad around the segment, extended half a
// pixel past each end so both end pixels are covered.
func segmentPath(z *vector.Rasterizer, from, to image.Point, width int) {
	ax, ay := center(from)
	bx, by := center(to)
	dx, dy := float64(bx-ax), float64(by-ay)
	l := math.Hypot(dx, dy)
	var ux, uy float64
	if l == 0 {
		ux, uy = 1, 0
	} else {
		ux, uy = dx/l, dy/l
	}
	hw := float64(width) / 2
	ex, ey := float32(ux*0.5), float32(uy*0.5)
	nx, ny := float32(-uy*hw), float32(ux*hw)

	ax, ay = ax-ex, ay-ey
	bx, by = bx+ex, by+ey
	z.MoveTo(ax+nx, ay+ny)
	z.LineTo(bx+nx, by+ny)
	z.LineTo(bx-nx, by-ny)
	z.LineTo(ax-nx, ay-ny)
	z.ClosePath()
}
