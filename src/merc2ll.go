package s2proj

/* Mercator plane to Latitude / Longitude conversion */

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/pflag"
)

func Merc2LLMain() {
	var scale = pflag.Float64P("scale", "s", DEFAULT_SCALE, "Projection scale.  x spans [-scale, scale].  Overrides the config file.")
	var configFile = pflag.StringP("config", "c", "", "Configuration file.  Default is to search for s2proj.yaml.")
	var verbose = pflag.BoolP("verbose", "v", false, "Verbose.  Log debug information.")
	var help = pflag.Bool("help", false, "Display help text.")
	var version = pflag.Bool("version", false, "Display version and exit.")

	pflag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Mercator plane to Latitude / Longitude conversion\n")
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "\tmerc2ll [OPTIONS] x y\n")
		fmt.Fprintf(os.Stderr, "\n")
		pflag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\n")
		fmt.Fprintf(os.Stderr, "Example:\n")
		fmt.Fprintf(os.Stderr, "\tmerc2ll -0.198238 0.131271\n")
	}

	parseCommandLine()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *version {
		printVersion(os.Stdout, "merc2ll")
		return
	}

	if pflag.NArg() != 2 {
		pflag.Usage()
		os.Exit(1)
	}

	var logger = NewLogger(os.Stderr, "merc2ll", *verbose)

	// Pole policy only matters going the other way.
	var proj, projErr = projectionFromFlags(logger, *configFile, *scale, "")
	if projErr != nil {
		logger.Error("invalid configuration", "err", projErr)
		os.Exit(1)
	}

	var x, xErr = strconv.ParseFloat(pflag.Arg(0), 64)
	var y, yErr = strconv.ParseFloat(pflag.Arg(1), 64)

	if xErr != nil || yErr != nil {
		logger.Error("x and y must be decimal numbers", "x", pflag.Arg(0), "y", pflag.Arg(1))
		os.Exit(1)
	}

	var lat, lng = proj.Unproject(x, y)

	fmt.Printf("latitude = %.6f, longitude = %.6f\n", lat, lng)
}
