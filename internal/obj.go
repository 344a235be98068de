package internal

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Wavefront OBJ import and export, covering the subset meshes need: "v x y z"
// vertex lines and "f a b c" triangle lines with 1-based indices.

// Write the mesh's vertices and faces.
func WriteOBJ(w io.Writer, m *Mesh) error {
	for _, v := range m.Vertices {
		if _, err := fmt.Fprintf(w, "v %g %g %g\n", v.Point.X, v.Point.Y, v.Point.Z); err != nil {
			return errors.Wrap(err, "writing vertex")
		}
	}

	for i := range m.Faces {
		corners := m.FaceVertices(FaceIndex(i))
		// One has to be added to every index
		if _, err := fmt.Fprintf(w, "f %d %d %d\n", corners[0]+1, corners[1]+1, corners[2]+1); err != nil {
			return errors.Wrap(err, "writing face")
		}
	}
	return nil
}

// Read vertices and triangles. Face corners may carry texture and normal
// references ("3/1/2"); only the vertex index is kept. Other statements are
// skipped.
func ReadOBJ(r io.Reader) ([]*Vector, [][3]int, error) {
	var vertices []*Vector
	var faces [][3]int

	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		words := strings.Fields(scanner.Text())
		if len(words) == 0 {
			continue
		}

		switch words[0] {
		case "v":
			if len(words) < 4 {
				return nil, nil, errors.Errorf("line %d: vertices must be 3D", lineNumber)
			}
			var coords [3]float64
			for i := range coords {
				value, err := strconv.ParseFloat(words[i+1], 64)
				if err != nil {
					return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
				}
				coords[i] = value
			}
			vertices = append(vertices, NewVector3(coords[0], coords[1], coords[2]))

		case "f":
			if len(words) != 4 {
				return nil, nil, errors.Errorf("line %d: only triangles are supported", lineNumber)
			}
			var face [3]int
			for i, word := range words[1:] {
				index, _, _ := strings.Cut(word, "/")
				value, err := strconv.Atoi(index)
				if err != nil {
					return nil, nil, errors.Wrapf(err, "line %d", lineNumber)
				}
				// Adjusting the index to be 0-based
				face[i] = value - 1
			}
			faces = append(faces, face)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, nil, errors.Wrap(err, "reading obj")
	}
	return vertices, faces, nil
}
