/* Latitude / Longitude to Mercator plane conversion */
package main

import (
	s2proj "github.com/doismellburning/s2proj/src"
)

func main() {
	s2proj.LL2MercMain()
}
