package icon

import (
	"image"

	"kbicons/shape"
)

// Tier is the level of detail an icon is drawn with.
type Tier int

const (
	TierMinimal Tier = iota // bubble only
	TierReduced             // bubble with one dot, two books
	TierFull                // full bubble, three books, optional connector
)

func (t Tier) String() string {
	switch t {
	case TierMinimal:
		return "minimal"
	case TierReduced:
		return "reduced"
	case TierFull:
		return "full"
	}
	return "unknown"
}

// Size thresholds, in pixels.
const (
	ReducedMin   = 16  // smallest size drawn with books
	FullMin      = 48  // smallest size drawn at full detail and with rounded corners
	ConnectorMin = 64  // smallest size drawn with the bubble-to-books line
	DesignSize   = 128 // size all offsets are expressed in
)

// TierFor returns the tier used for size.
func TierFor(size int) Tier {
	switch {
	case size >= FullMin:
		return TierFull
	case size >= ReducedMin:
		return TierReduced
	}
	return TierMinimal
}

// Segment is a straight line between two pixel centers.
type Segment struct {
	From, To image.Point
	Width    int
}

// Bubble is the chat bubble on the left of the emblem.
type Bubble struct {
	Outer        shape.Box
	OutlineWidth int
	Inner        shape.Box
	Dots         []shape.Box
	Tail         []image.Point // empty below TierFull
	TailWidth    int
}

// Book is one document in the stack on the right of the emblem.
type Book struct {
	Rect         shape.Box
	OutlineWidth int
	Divider      *Segment
}

// Plan is the geometry of one icon. It holds no colors.
type Plan struct {
	Size         int
	Tier         Tier
	Scale        float64
	Bubble       Bubble
	Books        []Book
	Connector    *Segment
	CornerRadius int // zero means square corners
}

// scaler multiplies design offsets by the size factor and truncates.
type scaler float64

func (s scaler) px(v float64) int {
	return int(v * float64(s))
}

// Layout computes the geometry for an icon of the given size.
func Layout(size int) (Plan, error) {
	if size <= 0 {
		return Plan{}, ErrInvalidSize
	}
	s := scaler(float64(size) / DesignSize)
	p := Plan{
		Size:  size,
		Tier:  TierFor(size),
		Scale: float64(s),
	}
	c := size / 2
	switch p.Tier {
	case TierFull:
		layoutFull(&p, s, c)
		p.CornerRadius = s.px(12)
	case TierReduced:
		layoutReduced(&p, s, c)
	default:
		layoutMinimal(&p, s, c)
	}
	return p, nil
}

func bubbleBox(cx, cy, diameter int) shape.Box {
	r := diameter / 2
	return shape.Box{X0: cx - r, Y0: cy - r, X1: cx + r, Y1: cy + r}
}

func layoutFull(p *Plan, s scaler, c int) {
	bx := c - s.px(25)
	by := c - s.px(2)
	outer := bubbleBox(bx, by, s.px(50))
	dot := s.px(6)
	p.Bubble = Bubble{
		Outer:        outer,
		OutlineWidth: s.px(2),
		Inner:        outer.Inset(s.px(3)),
		Dots: []shape.Box{
			shape.Around(image.Pt(bx-s.px(10), by-s.px(6)), dot),
			shape.Around(image.Pt(bx, by), dot),
			shape.Around(image.Pt(bx+s.px(10), by+s.px(6)), dot),
		},
		Tail: []image.Point{
			{bx + s.px(18), by + s.px(12)},
			{bx + s.px(28), by + s.px(18)},
			{bx + s.px(22), by + s.px(24)},
		},
		TailWidth: s.px(1.5),
	}

	kx := c + s.px(25)
	ky := c + s.px(8)
	w, h := s.px(28), s.px(36)
	spacing := s.px(3)
	rise := s.px(3)
	for i := 0; i < 3; i++ {
		r := shape.Box{
			X0: kx - w/2, Y0: ky - h/2,
			X1: kx + w/2, Y1: ky + h/2,
		}.Offset(i*spacing, -i*rise)
		b := Book{Rect: r, OutlineWidth: s.px(2)}
		if i < 2 {
			y := r.Y0 + h/2
			b.Divider = &Segment{
				From:  image.Pt(r.X0+s.px(5), y),
				To:    image.Pt(r.X1-s.px(5), y),
				Width: s.px(2.5),
			}
		}
		p.Books = append(p.Books, b)
	}

	if p.Size >= ConnectorMin {
		p.Connector = &Segment{
			From:  image.Pt(bx+s.px(25), by+s.px(15)),
			To:    image.Pt(kx-s.px(14), ky-s.px(12)),
			Width: s.px(3),
		}
	}
}

func layoutReduced(p *Plan, s scaler, c int) {
	bx := c - s.px(8)
	by := c
	outer := bubbleBox(bx, by, s.px(18))
	p.Bubble = Bubble{
		Outer:        outer,
		OutlineWidth: s.px(1.5),
		Inner:        outer.Inset(s.px(2)),
		Dots:         []shape.Box{shape.Around(image.Pt(bx, by), s.px(3))},
	}

	kx := c + s.px(8)
	ky := c + s.px(2)
	for i := 0; i < 2; i++ {
		dx := i * s.px(2)
		dy := i * s.px(1.5)
		p.Books = append(p.Books, Book{
			Rect: shape.Box{
				X0: kx - s.px(7) + dx, Y0: ky - s.px(6) - dy,
				X1: kx + s.px(7) + dx, Y1: ky + s.px(6) - dy,
			},
			OutlineWidth: s.px(1.5),
		})
	}
}

func layoutMinimal(p *Plan, s scaler, c int) {
	outer := bubbleBox(c, c, s.px(14))
	p.Bubble = Bubble{
		Outer:        outer,
		OutlineWidth: s.px(1.5),
		Inner:        outer.Inset(s.px(2)),
		Dots:         []shape.Box{shape.Around(image.Pt(c, c), s.px(3))},
	}
}
