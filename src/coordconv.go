package s2proj

// Utilities for working with https://github.com/tzneal/coordconv

import (
	"github.com/golang/geo/s2"
	"github.com/tzneal/coordconv"
)

func HemisphereRuneToCoordconvHemisphere(hemi rune) coordconv.Hemisphere {
	switch hemi {
	case 'N', 'n':
		return coordconv.HemisphereNorth
	case 'S', 's':
		return coordconv.HemisphereSouth
	default:
		return coordconv.HemisphereInvalid
	}
}

func HemisphereToRune(h coordconv.Hemisphere) rune {
	switch h {
	case coordconv.HemisphereNorth:
		return 'N'
	case coordconv.HemisphereSouth:
		return 'S'
	case coordconv.HemisphereInvalid:
		return '!'
	default:
		return '?'
	}
}

// UTMFromDegrees gives the UTM equivalent of a position, so a map can show
// a grid reference next to the plane coordinates.  Fails outside the UTM
// latitude band.
func UTMFromDegrees(lat float64, lng float64) (coordconv.UTMCoord, error) {
	return coordconv.DefaultUTMConverter.ConvertFromGeodetic(s2.LatLngFromDegrees(lat, lng), 0)
}
