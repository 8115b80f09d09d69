// Package icon draws the toolbar emblem: a chat bubble joined to a stack of
// books over a radial gradient, with detail scaled to the icon size.
package icon

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"golang.org/x/image/draw"

	"kbicons/gradient"
	"kbicons/palette"
	"kbicons/shape"
)

// ErrInvalidSize is returned for non-positive icon sizes.
var ErrInvalidSize = fmt.Errorf("icon: %w", gradient.ErrInvalidSize)

var white = color.RGBA{R: 255, G: 255, B: 255, A: 255}

// Options tunes how an icon is finished.
type Options struct {
	// Matte is the color the rounded corners are flattened onto.
	// Nil means the theme's BgEnd.
	Matte color.Color

	// SquareCorners disables the rounded-corner pass.
	SquareCorners bool
}

// Compose renders an icon of the given size with theme.
func Compose(size int, theme palette.Theme) (*image.RGBA, error) {
	return ComposeWith(size, theme, Options{})
}

// ComposeWith renders an icon of the given size with theme and opts.
func ComposeWith(size int, theme palette.Theme, opts Options) (*image.RGBA, error) {
	plan, err := Layout(size)
	if err != nil {
		return nil, err
	}
	img, err := gradient.Radial(size, theme.BgStart, theme.BgEnd)
	if err != nil {
		return nil, fmt.Errorf("icon: %w", err)
	}
	Paint(img, plan, theme)

	if opts.SquareCorners || plan.CornerRadius == 0 {
		return img, nil
	}
	matte := opts.Matte
	if matte == nil {
		matte = theme.BgEnd
	}
	if out, ok := RoundCorners(img, plan.CornerRadius, matte).(*image.RGBA); ok {
		return out, nil
	}
	return img, nil
}

// Paint draws the shapes of plan onto dst using theme colors.
func Paint(dst draw.Image, plan Plan, theme palette.Theme) {
	p := shape.NewPainter(dst)

	b := plan.Bubble
	p.Ellipse(b.Outer, theme.Primary, theme.Outline, b.OutlineWidth)
	p.Ellipse(b.Inner, white, nil, 0)
	for _, d := range b.Dots {
		p.Ellipse(d, theme.Primary, nil, 0)
	}
	if len(b.Tail) > 0 {
		p.Polygon(b.Tail, theme.Primary, theme.Outline, b.TailWidth)
	}

	for _, book := range plan.Books {
		p.Rectangle(book.Rect, theme.Primary, theme.Outline, book.OutlineWidth)
		if d := book.Divider; d != nil {
			p.Line(d.From, d.To, white, d.Width)
		}
	}

	if c := plan.Connector; c != nil {
		p.Line(c.From, c.To, theme.Primary, c.Width)
	}
}

// RoundCorners masks img with a rounded rectangle of the given radius and
// flattens the result onto matte. Images that cannot be drawn into are
// returned unchanged.
func RoundCorners(img image.Image, radius int, matte color.Color) image.Image {
	if _, ok := img.(draw.Image); !ok {
		return img
	}
	b := img.Bounds()
	mask := shape.RoundedMask(b.Dx(), b.Dy(), radius)

	out := image.NewRGBA(b)
	draw.Draw(out, b, image.NewUniform(matte), image.Point{}, draw.Src)
	draw.DrawMask(out, b, img, b.Min, mask, image.Point{}, draw.Over)
	return out
}

// Encode writes img as a PNG at the highest compression level.
func Encode(w io.Writer, img image.Image) error {
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	return enc.Encode(w, img)
}

// FileName returns the output file name for a size and theme,
// e.g. "icon48.png" or "icon48_disabled.png".
func FileName(size int, theme palette.Theme) string {
	return fmt.Sprintf("icon%d%s.png", size, theme.Suffix())
}
