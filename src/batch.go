package s2proj

/*------------------------------------------------------------------
 *
 * Purpose:	Project a stream of coordinates, one "lat lng" pair per
 *		line, for feeding track logs etc. through ll2merc.
 *
 *------------------------------------------------------------------*/

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/lestrrat-go/strftime"
	"github.com/tzneal/coordconv"
)

type BatchOptions struct {
	ShowUTM         bool
	TimestampFormat string // strftime pattern.  Empty for no time stamp.
	Now             func() time.Time
}

// Far longer than any "lat lng" line.  Longer lines are skipped.
const MAX_LINE_LENGTH = 4096

var ErrHemisphere = errors.New("invalid hemisphere")
var ErrLineTooLong = fmt.Errorf("line of %d bytes or more", MAX_LINE_LENGTH)

/*------------------------------------------------------------------
 *
 * Name:	ParseLatLng
 *
 * Purpose:	Get a position from "lat lng", "lat,lng" or "lat, lng".
 *
 * Description:	Each value may instead carry a hemisphere letter, as
 *		in "33.8688S 151.2093E".  Negative numbers with a
 *		hemisphere letter are ambiguous and rejected.
 *
 *------------------------------------------------------------------*/

func ParseLatLng(line string) (float64, float64, error) {
	var fields = strings.FieldsFunc(line, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})

	if len(fields) != 2 {
		return 0, 0, fmt.Errorf("expected latitude and longitude, got %d field(s)", len(fields))
	}

	var lat, latErr = parseLatitude(fields[0])
	if latErr != nil {
		return 0, 0, fmt.Errorf("latitude: %w", latErr)
	}

	var lng, lngErr = parseLongitude(fields[1])
	if lngErr != nil {
		return 0, 0, fmt.Errorf("longitude: %w", lngErr)
	}

	return lat, lng, nil
}

// splitHemisphere separates a trailing letter, if any, from the number.
func splitHemisphere(field string) (string, rune) {
	var last, size = utf8.DecodeLastRuneInString(field)
	if size == 0 || !unicode.IsLetter(last) {
		return field, 0
	}

	// "Inf" and "NaN" are numbers to ParseFloat.
	if _, err := strconv.ParseFloat(field, 64); err == nil {
		return field, 0
	}

	return field[:len(field)-size], last
}

func parseLatitude(field string) (float64, error) {
	var number, hemi = splitHemisphere(field)

	var value, err = strconv.ParseFloat(number, 64)
	if err != nil || hemi == 0 {
		return value, err
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: %q has both a sign and a hemisphere", ErrHemisphere, field)
	}

	switch HemisphereRuneToCoordconvHemisphere(hemi) {
	case coordconv.HemisphereNorth:
		return value, nil
	case coordconv.HemisphereSouth:
		return -value, nil
	default:
		return 0, fmt.Errorf("%w %q for latitude (expected N or S)", ErrHemisphere, string(hemi))
	}
}

func parseLongitude(field string) (float64, error) {
	var number, hemi = splitHemisphere(field)

	var value, err = strconv.ParseFloat(number, 64)
	if err != nil || hemi == 0 {
		return value, err
	}

	if value < 0 {
		return 0, fmt.Errorf("%w: %q has both a sign and a hemisphere", ErrHemisphere, field)
	}

	switch unicode.ToUpper(hemi) {
	case 'E':
		return value, nil
	case 'W':
		return -value, nil
	default:
		return 0, fmt.Errorf("%w %q for longitude (expected E or W)", ErrHemisphere, string(hemi))
	}
}

// FormatProjected gives the output lines for one position.
func FormatProjected(lat float64, lng float64, p Point, showUTM bool, logger *log.Logger) []string {
	var lines = []string{fmt.Sprintf("x = %.6f, y = %.6f", p.X, p.Y)}

	if !p.IsFinite() {
		logger.Warn("projection is not finite", "lat", lat, "lng", lng, "x", p.X, "y", p.Y)
	}

	if showUTM {
		var utmCoord, utmErr = UTMFromDegrees(lat, lng)
		if utmErr == nil {
			lines = append(lines, fmt.Sprintf("UTM zone = %d, hemisphere = %c, easting = %.0f, northing = %.0f",
				utmCoord.Zone, HemisphereToRune(utmCoord.Hemisphere), utmCoord.Easting, utmCoord.Northing))
		} else {
			// Still worth having the Mercator result.
			logger.Warn("conversion to UTM failed", "lat", lat, "lng", lng, "err", utmErr)
		}
	}

	return lines
}

/*------------------------------------------------------------------
 *
 * Name:	ProjectStream
 *
 * Purpose:	Project every coordinate pair read from r, writing the
 *		results to w.
 *
 * Description:	Blank lines and lines starting with # are ignored.
 *		Lines that don't parse, or are MAX_LINE_LENGTH bytes
 *		or longer, are logged and skipped rather than stopping
 *		the whole run.
 *
 * Returns:	Number of lines skipped because they didn't parse, and
 *		any read / write error.
 *
 *------------------------------------------------------------------*/

func ProjectStream(r io.Reader, w io.Writer, proj *Projection, opts BatchOptions, logger *log.Logger) (int, error) {
	var stamp *strftime.Strftime

	if opts.TimestampFormat != "" {
		var err error

		stamp, err = strftime.New(opts.TimestampFormat)
		if err != nil {
			return 0, fmt.Errorf("timestamp format %q: %w", opts.TimestampFormat, err)
		}
	}

	var now = opts.Now
	if now == nil {
		now = time.Now
	}

	var skipped = 0
	var lineNumber = 0

	var reader = bufio.NewReaderSize(r, MAX_LINE_LENGTH)

	for {
		var raw, readErr = readLine(reader)
		if errors.Is(readErr, io.EOF) {
			break
		}

		lineNumber++

		if errors.Is(readErr, ErrLineTooLong) {
			logger.Error("skipping line", "line", lineNumber, "err", readErr)
			skipped++

			continue
		}

		if readErr != nil {
			return skipped, fmt.Errorf("reading input: %w", readErr)
		}

		var line = strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		var lat, lng, parseErr = ParseLatLng(line)
		if parseErr != nil {
			logger.Error("skipping line", "line", lineNumber, "err", parseErr)
			skipped++

			continue
		}

		var prefix = ""
		if stamp != nil {
			prefix = stamp.FormatString(now()) + " "
		}

		for _, out := range FormatProjected(lat, lng, proj.Project(lat, lng), opts.ShowUTM, logger) {
			if _, err := fmt.Fprintf(w, "%s%s\n", prefix, out); err != nil {
				return skipped, err
			}
		}
	}

	logger.Debug("batch done", "lines", lineNumber, "skipped", skipped)

	return skipped, nil
}

// readLine gets the next line without its line ending.  An overlong line is
// read to its end and thrown away, giving ErrLineTooLong, so the next call
// starts on the following line.
func readLine(reader *bufio.Reader) (string, error) {
	var raw, isPrefix, err = reader.ReadLine()
	if err != nil {
		return "", err
	}

	if !isPrefix {
		return string(raw), nil
	}

	for isPrefix && err == nil {
		_, isPrefix, err = reader.ReadLine()
	}

	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}

	return "", ErrLineTooLong
}
