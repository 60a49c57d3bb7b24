// Package hullio reads hull outlines from external sources. The core never
// re-samples or smooths geometry: whatever point sequence a reader produces
// is the exact polygon the solvers see.
package hullio

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/azmadax/hydrostatic"
)

// ReadPoints reads a hull outline as newline-separated points in the form
// "x y". Blank lines are skipped. The curve is returned as read, without
// closing it.
func ReadPoints(in io.Reader) (hydrostatic.Curve, error) {
	var points []hydrostatic.Point
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		point, err := parsePoint(line)
		if err != nil {
			return hydrostatic.Curve{}, err
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return hydrostatic.Curve{}, errors.Wrap(err, "reading hull points")
	}
	return hydrostatic.Curve{Points: points}, nil
}

func parsePoint(line string) (hydrostatic.Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return hydrostatic.Point{}, errors.Errorf("invalid point line %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return hydrostatic.Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return hydrostatic.Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return hydrostatic.Point{X: x, Y: y}, nil
}
