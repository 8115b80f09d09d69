package doctor

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"

	"kbicons/gradient"
	"kbicons/icon"
	"kbicons/palette"
	"kbicons/shape"
)

type check struct {
	name string
	run  func() error
}

var checks = []check{
	{"Gradient fill", checkGradient},
	{"Shape rasterizer", checkShapes},
	{"PNG round-trip", checkPNG},
}

// Check runs every drawing check silently and returns the first failure.
func Check() error {
	for _, c := range checks {
		if err := c.run(); err != nil {
			return fmt.Errorf("%s: %w", c.name, err)
		}
	}
	return nil
}

// Run executes the drawing checks, reporting each to w, and returns an exit
// code (0=all pass, 1=any fail).
func Run(w io.Writer) int {
	fmt.Fprintln(w, "kbicons doctor - drawing capability checks")
	fmt.Fprintln(w, "==========================================")

	allPass := true
	for i, c := range checks {
		fmt.Fprintln(w)
		fmt.Fprintf(w, "[%d/%d] %s\n", i+1, len(checks), c.name)
		if err := c.run(); err != nil {
			fmt.Fprintf(w, "  FAIL: %v\n", err)
			allPass = false
			continue
		}
		fmt.Fprintln(w, "  PASS")
	}

	fmt.Fprintln(w)
	if allPass {
		fmt.Fprintln(w, "All checks passed!")
		return 0
	}
	fmt.Fprintln(w, "Some checks failed. See details above.")
	return 1
}

func checkGradient() error {
	black := color.RGBA{A: 255}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	img, err := gradient.Radial(4, black, white)
	if err != nil {
		return err
	}
	if got := img.RGBAAt(2, 2); got != black {
		return fmt.Errorf("center pixel %v, want %v", got, black)
	}
	if got := img.RGBAAt(0, 0); got != white {
		return fmt.Errorf("corner pixel %v, want %v", got, white)
	}
	return nil
}

func checkShapes() error {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	fill := color.RGBA{R: 255, A: 255}
	shape.NewPainter(img).Rectangle(shape.Box{X0: 2, Y0: 2, X1: 5, Y1: 5}, fill, nil, 0)
	if got := img.RGBAAt(3, 3); got != fill {
		return fmt.Errorf("rectangle interior %v, want %v", got, fill)
	}
	if got := img.RGBAAt(0, 0); got.A != 0 {
		return fmt.Errorf("pixel outside rectangle painted: %v", got)
	}
	if m := shape.RoundedMask(8, 8, 4); m.AlphaAt(0, 0).A != 0 || m.AlphaAt(4, 4).A != 0xff {
		return fmt.Errorf("rounded mask coverage wrong")
	}
	return nil
}

func checkPNG() error {
	th, ok := palette.Lookup(palette.Enabled)
	if !ok {
		return fmt.Errorf("theme %q missing", palette.Enabled)
	}
	img, err := icon.Compose(icon.ReducedMin, th)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := icon.Encode(&buf, img); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	decoded, err := png.Decode(&buf)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if b := decoded.Bounds(); b.Dx() != icon.ReducedMin || b.Dy() != icon.ReducedMin {
		return fmt.Errorf("decoded bounds %v", b)
	}
	return nil
}
