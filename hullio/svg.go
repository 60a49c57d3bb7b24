package hullio

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"

	"github.com/azmadax/hydrostatic"
)

// ReadSVG reads a hull outline from the first <polygon> element of an SVG
// document. SVG's y axis grows downward, so y coordinates are negated into
// the section's y-up frame; a hull drawn below the document's y = 0 line is
// submerged.
func ReadSVG(in io.Reader) (hydrostatic.Curve, error) {
	rootEl, err := svgparser.Parse(in, true)
	if err != nil {
		return hydrostatic.Curve{}, errors.Wrap(err, "parsing SVG")
	}

	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		return hydrostatic.Curve{}, errors.New("no polygon element found")
	}

	pointString := polygons[0].Attributes["points"]
	pointStrings := strings.Fields(pointString)
	points := make([]hydrostatic.Point, 0, len(pointStrings))
	for _, pair := range pointStrings {
		coords := strings.Split(pair, ",")
		if len(coords) != 2 {
			return hydrostatic.Curve{}, errors.Errorf("invalid point string %q", pair)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return hydrostatic.Curve{}, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return hydrostatic.Curve{}, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, hydrostatic.Point{X: x, Y: -y})
	}
	return hydrostatic.Curve{Points: points}, nil
}
