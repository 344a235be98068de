package internal

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Point clouds drawn in an SVG editor. This is not a full (or even correct)
// svg reader: every <circle> contributes its center, and every <polygon> or
// <polyline> contributes its vertices. Coordinates are taken as they are, y
// pointing down.
func ReadSVGPoints(r io.Reader) ([]*Vector, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var points []*Vector
	for _, circleEl := range rootEl.FindAll("circle") {
		x, err := strconv.ParseFloat(circleEl.Attributes["cx"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cx %q", circleEl.Attributes["cx"])
		}
		y, err := strconv.ParseFloat(circleEl.Attributes["cy"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid cy %q", circleEl.Attributes["cy"])
		}
		points = append(points, NewVector2(x, y))
	}

	for _, name := range []string{"polygon", "polyline"} {
		for _, el := range rootEl.FindAll(name) {
			vertices, err := parsePointList(el.Attributes["points"])
			if err != nil {
				return nil, err
			}
			points = append(points, vertices...)
		}
	}

	if len(points) == 0 {
		return nil, errors.New("no circles or polygons found")
	}
	return points, nil
}

// Parse "x1,y1 x2,y2 ..." as found in a points attribute.
func parsePointList(pointString string) ([]*Vector, error) {
	var points []*Vector
	for _, pointString := range strings.Fields(pointString) {
		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", pointStrings[0])
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", pointStrings[1])
		}
		points = append(points, NewVector2(x, y))
	}
	return points, nil
}
