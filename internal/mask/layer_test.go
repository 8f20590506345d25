package mask

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLayerRejectsInvalidDimensions(t *testing.T) {
	for _, dims := range [][2]int{{0, 10}, {10, 0}, {-1, 10}, {10, -1}} {
		_, err := NewLayer(dims[0], dims[1])
		assert.Error(t, err, "dims %v", dims)
	}
}

func TestFreshLayerIsEmpty(t *testing.T) {
	l, err := NewLayer(64, 48)
	require.NoError(t, err)

	assert.True(t, l.Empty())
	assert.Equal(t, 64, l.Width())
	assert.Equal(t, 48, l.Height())
}

func TestBeginStrokeMarksDisc(t *testing.T) {
	l, err := NewLayer(100, 100)
	require.NoError(t, err)
	l.SetBrushRadius(10)

	l.BeginStroke(Point{X: 50, Y: 50})
	l.EndStroke()

	assert.False(t, l.Empty())
	// Center and a point inside the radius are marked.
	assert.NotZero(t, l.rgba.RGBAAt(50, 50).A)
	assert.NotZero(t, l.rgba.RGBAAt(58, 50).A)
	// Well outside the radius stays transparent.
	assert.Zero(t, l.rgba.RGBAAt(75, 50).A)
}

func TestStrokeToFillsSegmentWithoutGaps(t *testing.T) {
	l, err := NewLayer(200, 100)
	require.NoError(t, err)
	l.SetBrushRadius(5)

	// Two distant samples, as produced by fast pointer movement.
	l.BeginStroke(Point{X: 20, Y: 50})
	l.StrokeTo(Point{X: 180, Y: 50})
	l.EndStroke()

	for x := 20; x <= 180; x++ {
		assert.NotZero(t, l.rgba.RGBAAt(x, 50).A, "gap at x=%d", x)
	}
}

func TestStrokeToWithoutBeginActsAsBegin(t *testing.T) {
	l, err := NewLayer(50, 50)
	require.NoError(t, err)

	l.StrokeTo(Point{X: 25, Y: 25})

	assert.False(t, l.Empty())
}

func TestStrokesOutsideBoundsAreDiscarded(t *testing.T) {
	l, err := NewLayer(40, 40)
	require.NoError(t, err)
	l.SetBrushRadius(15)

	l.BeginStroke(Point{X: -100, Y: -100})
	l.StrokeTo(Point{X: 500, Y: -100})
	l.EndStroke()

	// Nothing panicked and nothing inside the layer was touched.
	assert.True(t, l.Empty())
}

func TestBrushRadiusClamped(t *testing.T) {
	l, err := NewLayer(10, 10)
	require.NoError(t, err)

	l.SetBrushRadius(1)
	assert.Equal(t, MinBrushRadius, l.BrushRadius())

	l.SetBrushRadius(500)
	assert.Equal(t, MaxBrushRadius, l.BrushRadius())

	l.SetBrushRadius(17)
	assert.Equal(t, 17, l.BrushRadius())
}

func TestClearResetsLayer(t *testing.T) {
	l, err := NewLayer(30, 30)
	require.NoError(t, err)

	l.BeginStroke(Point{X: 15, Y: 15})
	l.EndStroke()
	require.False(t, l.Empty())

	l.Clear()

	assert.True(t, l.Empty())
}

func TestDisplayToRasterScalesPerAxis(t *testing.T) {
	l, err := NewLayer(100, 200)
	require.NoError(t, err)

	p := l.DisplayToRaster(DisplayPoint{X: 50, Y: 50}, 200, 100)
	assert.Equal(t, Point{X: 25, Y: 100}, p)
}

func TestDisplayToRasterScaleInvariant(t *testing.T) {
	l, err := NewLayer(100, 100)
	require.NoError(t, err)

	// The same displayed location maps to the same raster pixel for any CSS
	// display size of the canvas.
	small := l.DisplayToRaster(DisplayPoint{X: 50, Y: 50}, 200, 200)
	large := l.DisplayToRaster(DisplayPoint{X: 100, Y: 100}, 400, 400)
	huge := l.DisplayToRaster(DisplayPoint{X: 200, Y: 200}, 800, 800)

	assert.Equal(t, small, large)
	assert.Equal(t, small, huge)
	assert.Equal(t, Point{X: 25, Y: 25}, small)
}

func TestDisplayToRasterDegenerateDisplaySize(t *testing.T) {
	l, err := NewLayer(100, 100)
	require.NoError(t, err)

	assert.Equal(t, Point{}, l.DisplayToRaster(DisplayPoint{X: 10, Y: 10}, 0, 0))
}
