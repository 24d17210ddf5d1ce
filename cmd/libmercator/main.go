package main

/*------------------------------------------------------------------
 *
 * Purpose:	C callable Mercator projection for the terminal map viewer.
 *
 *		go build -buildmode=c-shared -o libmercator.so ./cmd/libmercator
 *
 *		gives libmercator.so and libmercator.h with
 *
 *			Point mercator(double lat, double lng);
 *
 * Description:	Scale 0.5, no clamping.  Near the poles y comes back
 *		as +/-Inf; callers have always had to cope with that.
 *
 *------------------------------------------------------------------*/

// #include "bindings.h"
import "C"

import (
	s2proj "github.com/doismellburning/s2proj/src"
)

//export mercator
func mercator(lat C.double, lng C.double) C.Point {
	var x, y = project(float64(lat), float64(lng))

	return C.Point{x: C.double(x), y: C.double(y)}
}

func project(lat float64, lng float64) (float64, float64) {
	var p = s2proj.Mercator(lat, lng)

	return p.X, p.Y
}

func main() {} // Required for c-shared, never called.
