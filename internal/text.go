package internal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Read points given as "x y" or "x y z", one per line. Blank lines and lines
// starting with # are skipped.
func ReadTextPoints(r io.Reader) ([]*Vector, error) {
	var points []*Vector
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
			continue
		}
		if len(fields) < 2 || len(fields) > 3 {
			return nil, errors.Errorf("line %d: expected 2 or 3 coordinates, got %d", lineNumber, len(fields))
		}

		// Parse the point out of the line
		var coords [3]float64
		for i, field := range fields {
			value, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "line %d", lineNumber)
			}
			coords[i] = value
		}
		points = append(points, NewVector3(coords[0], coords[1], coords[2]))
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading points")
	}
	return points, nil
}

// Write one point per line, in the format ReadTextPoints accepts.
func WriteTextPoints(w io.Writer, points []*Vector, in3D bool) error {
	for _, p := range points {
		var err error
		if in3D {
			_, err = fmt.Fprintf(w, "%g %g %g\n", p.X, p.Y, p.Z)
		} else {
			_, err = fmt.Fprintf(w, "%g %g\n", p.X, p.Y)
		}
		if err != nil {
			return errors.Wrap(err, "writing points")
		}
	}
	return nil
}
