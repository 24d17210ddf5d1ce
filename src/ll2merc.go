package s2proj

/*------------------------------------------------------------------
 *
 * Purpose:	Latitude / Longitude to Mercator plane conversion.
 *
 *		ll2merc  latitude  longitude
 *		ll2merc  < positions.txt
 *
 *------------------------------------------------------------------*/

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
)

// projectionFromFlags applies config file, then command line overrides.
func projectionFromFlags(logger *log.Logger, configFile string, scale float64, polePolicy string) (*Projection, error) {
	var cfg, cfgErr = LoadConfig(configFile)
	if cfgErr != nil {
		return nil, cfgErr
	}

	if pflag.CommandLine.Changed("scale") {
		cfg.Scale = scale
	}

	if polePolicy != "" {
		cfg.PolePolicy = PolePolicy(polePolicy)
	}

	logger.Debug("projection config", "scale", cfg.Scale, "pole_policy", cfg.PolePolicy)

	return NewProjection(cfg)
}

/*------------------------------------------------------------------
 *
 * Name:	negativeNumbersAsArgs
 *
 * Purpose:	Let "ll2merc -33.8688 151.2093" work like ll2utm does,
 *		rather than pflag complaining about an unknown "-3" option.
 *
 * Description:	A "--" goes in front of the first negative number that
 *		isn't the value of the option before it.  Anything after
 *		that is positional, as it would be for an explicit "--".
 *
 *------------------------------------------------------------------*/

func negativeNumbersAsArgs(fs *pflag.FlagSet, args []string) []string {
	for i, arg := range args {
		if arg == "--" {
			return args
		}

		if !strings.HasPrefix(arg, "-") {
			continue
		}

		if _, err := strconv.ParseFloat(arg, 64); err != nil {
			continue
		}

		if i > 0 && flagTakesValue(fs, args[i-1]) {
			continue
		}

		var out = make([]string, 0, len(args)+1)
		out = append(out, args[:i]...)
		out = append(out, "--")

		return append(out, args[i:]...)
	}

	return args
}

// flagTakesValue is true for "--scale" or "-s", which eat the next arg.
func flagTakesValue(fs *pflag.FlagSet, arg string) bool {
	var f *pflag.Flag

	switch {
	case strings.HasPrefix(arg, "--"):
		if strings.Contains(arg, "=") {
			return false
		}

		f = fs.Lookup(arg[2:])
	case len(arg) == 2 && arg[0] == '-':
		f = fs.ShorthandLookup(arg[1:])
	}

	return f != nil && f.NoOptDefVal == ""
}

// parseCommandLine is pflag.Parse with negative number handling.
func parseCommandLine() {
	_ = pflag.CommandLine.Parse(negativeNumbersAsArgs(pflag.CommandLine, os.Args[1:])) // ExitOnError
}

func LL2MercMain() {
	var scale = pflag.Float64P("scale", "s", DEFAULT_SCALE, "Projection scale.  x spans [-scale, scale].  Overrides the config file.")
	var configFile = pflag.StringP("config", "c", "", "Configuration file.  Default is to search for s2proj.yaml.")
	var polePolicy = pflag.StringP("pole-policy", "p", "", "What to do at the poles: passthrough or clamp.  Overrides the config file.")
	var showUTM = pflag.BoolP("utm", "u", false, "Also show UTM coordinates.")
	var timestampFormat = pflag.StringP("timestamp-format", "T", "", "Precede batch output lines with 'strftime' format time stamp.")
	var verbose = pflag.BoolP("verbose", "v", false, "Verbose.  Log debug information.")
	var help = pflag.Bool("help", false, "Display help text.")
	var version = pflag.Bool("version", false, "Display version and exit.")

	pflag.Usage = ll2mercUsage

	parseCommandLine()

	if *help {
		pflag.Usage()
		os.Exit(0)
	}

	if *version {
		printVersion(os.Stdout, "ll2merc")
		return
	}

	var logger = NewLogger(os.Stderr, "ll2merc", *verbose)

	var proj, projErr = projectionFromFlags(logger, *configFile, *scale, *polePolicy)
	if projErr != nil {
		logger.Error("invalid configuration", "err", projErr)
		os.Exit(1)
	}

	switch pflag.NArg() {
	case 0:
		var opts = BatchOptions{ //nolint:exhaustruct
			ShowUTM:         *showUTM,
			TimestampFormat: *timestampFormat,
		}

		var skipped, err = ProjectStream(os.Stdin, os.Stdout, proj, opts, logger)
		if err != nil {
			logger.Error("batch conversion failed", "err", err)
			os.Exit(1)
		}

		if skipped > 0 {
			logger.Warn("some input lines were skipped", "count", skipped)
		}
	case 2:
		var lat, lng, parseErr = ParseLatLng(pflag.Arg(0) + " " + pflag.Arg(1))
		if parseErr != nil {
			logger.Error("latitude and longitude must be decimal degrees", "lat", pflag.Arg(0), "lng", pflag.Arg(1), "err", parseErr)
			os.Exit(1)
		}

		for _, line := range FormatProjected(lat, lng, proj.Project(lat, lng), *showUTM, logger) {
			fmt.Println(line)
		}
	default:
		pflag.Usage()
		os.Exit(1)
	}
}

func ll2mercUsage() {
	fmt.Fprintf(os.Stderr, "Latitude / Longitude to Mercator plane conversion\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Usage:\n")
	fmt.Fprintf(os.Stderr, "\tll2merc [OPTIONS] latitude longitude\n")
	fmt.Fprintf(os.Stderr, "\tll2merc [OPTIONS] < file\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "where,\n")
	fmt.Fprintf(os.Stderr, "\tLatitude and longitude are in decimal degrees.\n")
	fmt.Fprintf(os.Stderr, "\t   Use negative for south or west, or a N/S/E/W suffix.\n")
	fmt.Fprintf(os.Stderr, "\tWith no position given, \"lat lng\" pairs are read from stdin, one per line.\n")
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Config file search order: s2proj.yaml, config/s2proj.yaml,\n")
	fmt.Fprintf(os.Stderr, "\t/usr/local/etc/s2proj.yaml, /etc/s2proj.yaml\n")
	fmt.Fprintf(os.Stderr, "\n")
	pflag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\n")
	fmt.Fprintf(os.Stderr, "Example:\n")
	fmt.Fprintf(os.Stderr, "\tll2merc 42.662139 -71.365553\n")
	fmt.Fprintf(os.Stderr, "\tll2merc 33.8688S 151.2093E\n")
}
