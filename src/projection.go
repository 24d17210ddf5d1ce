package s2proj

/*------------------------------------------------------------------
 *
 * Purpose:	Mercator projection of latitude / longitude onto a plane,
 *		for the terminal map viewer.
 *
 * Description:	The geometry is all done by the S2 library.  We only
 *		marshal degrees in and plane coordinates out.
 *
 *		Mercator y goes to infinity at the poles.  By default
 *		that is passed straight through to the caller, which is
 *		what the C binding has always done.  The "clamp" policy
 *		keeps everything finite for callers that would rather not
 *		deal with it.
 *
 *------------------------------------------------------------------*/

import (
	"math"

	"github.com/golang/geo/r2"
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"
)

// Latitude, in degrees, where Mercator y reaches +/- the scale, i.e. where
// the projected world becomes square.  atan(sinh(pi)).
const MaxMercatorLatitude = 85.0511287798066

// Point is a position in the projected plane.
type Point struct {
	X float64
	Y float64
}

// IsFinite reports whether neither coordinate is infinite or NaN.
func (p Point) IsFinite() bool {
	return !math.IsInf(p.X, 0) && !math.IsNaN(p.X) && !math.IsInf(p.Y, 0) && !math.IsNaN(p.Y)
}

// Projection is a configured Mercator projection.  It is immutable and
// safe for concurrent use.
type Projection struct {
	config Config
	mp     s2.Projection
}

func NewProjection(cfg Config) (*Projection, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	if cfg.PolePolicy == "" {
		cfg.PolePolicy = PolePassthrough
	}

	return &Projection{
		config: cfg,
		mp:     s2.NewMercatorProjection(cfg.Scale),
	}, nil
}

// DefaultConfig is valid, so no need to go through NewProjection.
var defaultProjection = &Projection{
	config: DefaultConfig(),
	mp:     s2.NewMercatorProjection(DEFAULT_SCALE),
}

// Mercator projects with the default configuration: scale 0.5, no clamping.
func Mercator(lat float64, lng float64) Point {
	return defaultProjection.Project(lat, lng)
}

func (p *Projection) Config() Config {
	return p.config
}

/*------------------------------------------------------------------
 *
 * Name:	Project
 *
 * Purpose:	Convert latitude / longitude to plane coordinates.
 *
 * Inputs:	lat, lng	- Degrees.  Not range checked unless the
 *				  pole policy is "clamp".
 *
 * Returns:	x in [-scale, scale] for longitudes in [-180, 180].
 *		y is +/-Inf at the poles, NaN in gives NaN out.
 *		y is exactly antisymmetric about the equator.
 *
 *------------------------------------------------------------------*/

func (p *Projection) Project(lat float64, lng float64) Point {
	var ll = s2.LatLngFromDegrees(lat, lng)

	if p.config.PolePolicy == PoleClamp {
		ll = clampLatLng(ll)
	}

	// Project the northern mirror image and put the sign back afterwards.
	// The S2 formula for y is only odd to within a few ULP; this makes
	// y(-lat) == -y(lat) exactly.  Copysign keeps -0 and NaN as they are.
	var south = math.Signbit(float64(ll.Lat))
	ll.Lat = s1.Angle(math.Abs(float64(ll.Lat)))

	var projected = p.mp.FromLatLng(ll)

	var y = projected.Y
	if south {
		y = math.Copysign(y, -1)
	}

	return Point{X: projected.X, Y: y}
}

func clampLatLng(ll s2.LatLng) s2.LatLng {
	// Normalized() won't touch NaN, which is what we want.
	ll = ll.Normalized()

	var limit = s1.Angle(MaxMercatorLatitude) * s1.Degree
	if ll.Lat > limit {
		ll.Lat = limit
	} else if ll.Lat < -limit {
		ll.Lat = -limit
	}

	return ll
}

// Unproject converts plane coordinates back to degrees.  x values beyond
// the edge of the world wrap around; longitude is always in [-180, 180].
func (p *Projection) Unproject(x float64, y float64) (float64, float64) {
	var ll = p.mp.ToLatLng(r2.Point{X: x, Y: y}).Normalized()

	return ll.Lat.Degrees(), ll.Lng.Degrees()
}

// Width is the x distance covered by 360 degrees of longitude.
func (p *Projection) Width() float64 {
	return p.mp.WrapDistance().X
}
