// Package gradient renders radial gradient backgrounds.
package gradient

import (
	"errors"
	"image"
	"image/color"
	"math"
)

// ErrInvalidSize is returned for non-positive canvas sizes.
var ErrInvalidSize = errors.New("gradient: size must be positive")

// Ratio returns the distance of pixel (x, y) from the canvas center,
// normalized by the center-to-corner distance and clamped to [0, 1].
// The center is size/2 using integer division.
func Ratio(size, x, y int) float64 {
	center := size / 2
	dx := float64(x - center)
	dy := float64(y - center)
	half := float64(size) / 2
	maxDist := math.Sqrt(2 * half * half)
	if maxDist == 0 {
		return 0
	}
	return math.Min(math.Sqrt(dx*dx+dy*dy)/maxDist, 1)
}

// Radial returns a size x size opaque canvas filled with a radial gradient
// running from start at the center to end at the corners.
func Radial(size int, start, end color.RGBA) (*image.RGBA, error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			ratio := Ratio(size, x, y)
			img.SetRGBA(x, y, color.RGBA{
				R: lerp(start.R, end.R, ratio),
				G: lerp(start.G, end.G, ratio),
				B: lerp(start.B, end.B, ratio),
				A: 255,
			})
		}
	}
	return img, nil
}

// lerp truncates like an int() cast; the clamp absorbs float error when a == b.
func lerp(a, b uint8, t float64) uint8 {
	v := int(float64(a)*(1-t) + float64(b)*t)
	lo, hi := int(a), int(b)
	if lo > hi {
		lo, hi = hi, lo
	}
	if v < lo {
		v = lo
	} else if v > hi {
		v = hi
	}
	return uint8(v)
}
