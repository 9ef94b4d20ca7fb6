// Package loaders parses the line-oriented geometry and lighting text
// files consumed by the renderer. Parsing failures are fatal to the
// run and are reported before any rendering work starts.
package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/meshtrace/meshtrace/pkg/core"
	"github.com/meshtrace/meshtrace/pkg/scene"
)

// LoadMesh loads a triangle mesh from a text file. Each non-blank line
// describes one triangle as nine whitespace-separated vector fields:
//
//	v1 n1 c1  v2 n2 c2  v3 n3 c3
//
// where each vector is three comma-separated reals ("x,y,z"). An
// all-zero normal means "compute the face normal at preprocessing".
func LoadMesh(filename string) ([]scene.Triangle, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open mesh file: %v", err)
	}
	defer file.Close()

	var triangles []scene.Triangle
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue // blank records are skipped
		}

		fields := strings.Fields(line)
		if len(fields) != 9 {
			return nil, fmt.Errorf("mesh file %s line %d: expected 9 vector fields, got %d", filename, lineNum, len(fields))
		}

		vectors := make([]core.Vec3, 9)
		for i, field := range fields {
			v, err := parseVec3(field)
			if err != nil {
				return nil, fmt.Errorf("mesh file %s line %d field %d: %v", filename, lineNum, i+1, err)
			}
			vectors[i] = v
		}

		triangles = append(triangles, scene.NewTriangle(
			scene.Vertex{Position: vectors[0], Normal: vectors[1], Color: vectors[2]},
			scene.Vertex{Position: vectors[3], Normal: vectors[4], Color: vectors[5]},
			scene.Vertex{Position: vectors[6], Normal: vectors[7], Color: vectors[8]},
		))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read mesh file: %v", err)
	}

	return triangles, nil
}

// parseVec3 parses a "x,y,z" comma-separated vector field
func parseVec3(field string) (core.Vec3, error) {
	parts := strings.Split(field, ",")
	if len(parts) != 3 {
		return core.Vec3{}, fmt.Errorf("expected 3 comma-separated components, got %d", len(parts))
	}
	var components [3]float64
	for i, part := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return core.Vec3{}, fmt.Errorf("invalid component %q: %v", part, err)
		}
		components[i] = v
	}
	return core.NewVec3(components[0], components[1], components[2]), nil
}
