package mask

import (
	"fmt"
	"image"
	"image/color"
	"math"
)

const (
	// MinBrushRadius and MaxBrushRadius bound the brush in raster units.
	MinBrushRadius = 5
	MaxBrushRadius = 50

	// DefaultBrushRadius is applied to a freshly allocated layer.
	DefaultBrushRadius = 20
)

// Point is a coordinate in the layer's raster space.
type Point struct {
	X int
	Y int
}

// DisplayPoint is a pointer position in display (CSS) coordinates.
type DisplayPoint struct {
	X float64
	Y float64
}

// Layer is the writable mask surface overlaid on an uploaded image. It is
// allocated at the image's natural pixel dimensions, starts fully
// transparent, and marks pixels with an opaque stroke color. Once a pixel is
// marked it stays marked until Clear.
type Layer struct {
	rgba   *image.RGBA
	brush  int
	stroke color.RGBA
	last   Point
	active bool
}

// NewLayer allocates a transparent mask layer matching the natural pixel
// dimensions of the underlying image.
func NewLayer(width, height int) (*Layer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("mask: invalid layer dimensions %dx%d", width, height)
	}
	return &Layer{
		rgba:   image.NewRGBA(image.Rect(0, 0, width, height)),
		brush:  DefaultBrushRadius,
		stroke: color.RGBA{A: 255},
	}, nil
}

// Width returns the raster width in pixels.
func (l *Layer) Width() int { return l.rgba.Rect.Dx() }

// Height returns the raster height in pixels.
func (l *Layer) Height() int { return l.rgba.Rect.Dy() }

// SetBrushRadius changes the brush radius for future strokes, clamped to
// [MinBrushRadius, MaxBrushRadius]. Painted pixels are unaffected.
func (l *Layer) SetBrushRadius(r int) {
	if r < MinBrushRadius {
		r = MinBrushRadius
	}
	if r > MaxBrushRadius {
		r = MaxBrushRadius
	}
	l.brush = r
}

// BrushRadius returns the current brush radius.
func (l *Layer) BrushRadius() int { return l.brush }

// DisplayToRaster maps a pointer position in display coordinates to raster
// coordinates, scaling each axis independently so mask precision does not
// depend on the canvas's CSS size.
func (l *Layer) DisplayToRaster(p DisplayPoint, displayW, displayH float64) Point {
	if displayW <= 0 || displayH <= 0 {
		return Point{}
	}
	return Point{
		X: int(math.Floor(p.X * float64(l.Width()) / displayW)),
		Y: int(math.Floor(p.Y * float64(l.Height()) / displayH)),
	}
}

// BeginStroke starts a stroke at p, stamping a filled disc so a single click
// leaves a mark.
func (l *Layer) BeginStroke(p Point) {
	l.paintSegment(p, p)
	l.last = p
	l.active = true
}

// StrokeTo extends the active stroke to p with a round-capped segment plus a
// disc at p, so fast pointer movement leaves no gaps. Without a preceding
// BeginStroke it behaves like one.
func (l *Layer) StrokeTo(p Point) {
	if !l.active {
		l.BeginStroke(p)
		return
	}
	l.paintSegment(l.last, p)
	l.last = p
}

// EndStroke finishes the active stroke.
func (l *Layer) EndStroke() { l.active = false }

// Clear wipes the layer back to fully transparent. The backdrop image is not
// part of the layer and is unaffected.
func (l *Layer) Clear() {
	pix := l.rgba.Pix
	for i := range pix {
		pix[i] = 0
	}
	l.active = false
}

// Empty reports whether no pixel has been painted since allocation or the
// last Clear.
func (l *Layer) Empty() bool {
	pix := l.rgba.Pix
	for i := 3; i < len(pix); i += 4 {
		if pix[i] != 0 {
			return false
		}
	}
	return true
}

// paintSegment marks every raster pixel within brush-radius of the segment
// a-b. The distance test yields round caps and joins; a == b yields a disc.
// Writes outside the layer bounds are discarded.
func (l *Layer) paintSegment(a, b Point) {
	r := l.brush
	minX := minInt(a.X, b.X) - r
	maxX := maxInt(a.X, b.X) + r
	minY := minInt(a.Y, b.Y) - r
	maxY := maxInt(a.Y, b.Y) + r

	bounds := l.rgba.Rect
	minX = maxInt(minX, bounds.Min.X)
	minY = maxInt(minY, bounds.Min.Y)
	maxX = minInt(maxX, bounds.Max.X-1)
	maxY = minInt(maxY, bounds.Max.Y-1)

	rr := float64(r) * float64(r)
	for y := minY; y <= maxY; y++ {
		for x := minX; x <= maxX; x++ {
			if distSq(float64(x), float64(y), a, b) <= rr {
				l.rgba.SetRGBA(x, y, l.stroke)
			}
		}
	}
}

// distSq returns the squared distance from (px, py) to the segment a-b.
func distSq(px, py float64, a, b Point) float64 {
	ax, ay := float64(a.X), float64(a.Y)
	bx, by := float64(b.X), float64(b.Y)
	dx, dy := bx-ax, by-ay

	lenSq := dx*dx + dy*dy
	t := 0.0
	if lenSq > 0 {
		t = ((px-ax)*dx + (py-ay)*dy) / lenSq
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	cx := ax + t*dx
	cy := ay + t*dy
	return (px-cx)*(px-cx) + (py-cy)*(py-cy)
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
