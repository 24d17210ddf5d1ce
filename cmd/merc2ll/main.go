/* Mercator plane to Latitude / Longitude conversion */
package main

import (
	s2proj "github.com/doismellburning/s2proj/src"
)

func main() {
	s2proj.Merc2LLMain()
}
