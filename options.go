package figure

// CollinearPrecision is the tolerance of the collinearity test used when flattening control
// points, ie. the maximum of |1 - |cos θ|| where θ is the angle between both neighbours.
var CollinearPrecision = 1e-3

// HitFlatness is the flattening tolerance of spline paths when testing pointer hits on segments.
var HitFlatness = 0.5

// MaxPoints is the maximum number of control points of new line figures.
var MaxPoints = 64

// Options are the tunables of an editor session. Handle size and click precision are in the
// caller's pixel space and are passed to the hit-test functions, the others are global.
type Options struct {
	HandleSize         float64
	ClickPrecision     float64
	MaxPoints          int
	CollinearPrecision float64
	HitFlatness        float64
}

// DefaultOptions are the default editor options.
var DefaultOptions = Options{
	HandleSize:         6.0,
	ClickPrecision:     3.0,
	MaxPoints:          64,
	CollinearPrecision: 1e-3,
	HitFlatness:        0.5,
}

// Apply sets the global tunables. Zero values are ignored.
func (o Options) Apply() {
	if 0.0 < o.CollinearPrecision {
		CollinearPrecision = o.CollinearPrecision
	}
	if 0 < o.MaxPoints {
		MaxPoints = o.MaxPoints
	}
	if 0.0 < o.HitFlatness {
		HitFlatness = o.HitFlatness
	}
}
