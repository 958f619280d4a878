package viz

import (
	"fmt"
	"math"
)

// LinearScale maps a numeric domain linearly onto a numeric range. A
// degenerate domain (min == max) maps every input to the range midpoint
// instead of dividing by zero.
type LinearScale struct {
	domainMin, domainMax float64
	rangeMin, rangeMax   float64
}

func NewLinearScale(domainMin, domainMax, rangeMin, rangeMax float64) LinearScale {
	return LinearScale{domainMin, domainMax, rangeMin, rangeMax}
}

func (s LinearScale) Map(v float64) float64 {
	if s.domainMax == s.domainMin {
		return (s.rangeMin + s.rangeMax) / 2
	}
	t := (v - s.domainMin) / (s.domainMax - s.domainMin)
	return s.rangeMin + t*(s.rangeMax-s.rangeMin)
}

// SqrtScale maps a domain onto a range through a square root, so visual
// area (not radius) grows linearly with the input. Degenerate domains map
// to the range midpoint.
type SqrtScale struct {
	domainMin, domainMax float64
	rangeMin, rangeMax   float64
}

func NewSqrtScale(domainMin, domainMax, rangeMin, rangeMax float64) SqrtScale {
	return SqrtScale{domainMin, domainMax, rangeMin, rangeMax}
}

func (s SqrtScale) Map(v float64) float64 {
	if s.domainMax == s.domainMin {
		return (s.rangeMin + s.rangeMax) / 2
	}
	t := (v - s.domainMin) / (s.domainMax - s.domainMin)
	if t < 0 {
		t = 0
	}
	return s.rangeMin + math.Sqrt(t)*(s.rangeMax-s.rangeMin)
}

// SequentialScale maps a numeric domain onto a single-hue color gradient.
// Degenerate domains map every input to the first stop.
type SequentialScale struct {
	domainMin, domainMax float64
	from, to             rgb
}

func NewSequentialScale(domainMin, domainMax float64, fromHex, toHex string) SequentialScale {
	return SequentialScale{
		domainMin: domainMin,
		domainMax: domainMax,
		from:      parseHex(fromHex),
		to:        parseHex(toHex),
	}
}

func (s SequentialScale) Map(v float64) string {
	if s.domainMax == s.domainMin {
		return s.from.hex()
	}
	t := (v - s.domainMin) / (s.domainMax - s.domainMin)
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	return s.from.lerp(s.to, t).hex()
}

type rgb struct {
	r, g, b float64
}

func parseHex(s string) rgb {
	var r, g, b uint8
	fmt.Sscanf(s, "#%02x%02x%02x", &r, &g, &b)
	return rgb{float64(r), float64(g), float64(b)}
}

func (c rgb) lerp(to rgb, t float64) rgb {
	return rgb{
		r: c.r + (to.r-c.r)*t,
		g: c.g + (to.g-c.g)*t,
		b: c.b + (to.b-c.b)*t,
	}
}

func (c rgb) hex() string {
	return fmt.Sprintf("#%02x%02x%02x",
		uint8(math.Round(c.r)), uint8(math.Round(c.g)), uint8(math.Round(c.b)))
}
