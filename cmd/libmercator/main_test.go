package main

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A _test.go file can't import "C", so C.double / C.Point can't be built
// here.  This covers the pure Go half of mercator() instead.  The package
// itself is still cgo, so these tests need CGO_ENABLED=1 like the build does.
func Test_project(t *testing.T) {
	var x, y = project(0, 0)
	assert.Zero(t, x)
	assert.Zero(t, y)

	x, y = project(0, 180)
	assert.InDelta(t, 0.5, x, 1e-12)
	assert.Zero(t, y)

	x, y = project(45, 90)
	assert.InDelta(t, 0.25, x, 1e-12)
	assert.InDelta(t, 0.140274963085, y, 1e-9)

	_, y = project(90, 0)
	assert.True(t, math.IsInf(y, 1) || y > 1e6, "y should diverge at the north pole, got %v", y)
}
