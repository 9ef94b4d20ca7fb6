package loaders

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/meshtrace/meshtrace/pkg/scene"
)

// LoadLights loads point lights from a text file. Each non-blank line
// is "position color", both vectors in "x,y,z" form.
func LoadLights(filename string) ([]scene.Light, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open lights file: %v", err)
	}
	defer file.Close()

	var lights []scene.Light
	scanner := bufio.NewScanner(file)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) != 2 {
			return nil, fmt.Errorf("lights file %s line %d: expected 'position color', got %d fields", filename, lineNum, len(fields))
		}

		position, err := parseVec3(fields[0])
		if err != nil {
			return nil, fmt.Errorf("lights file %s line %d position: %v", filename, lineNum, err)
		}
		color, err := parseVec3(fields[1])
		if err != nil {
			return nil, fmt.Errorf("lights file %s line %d color: %v", filename, lineNum, err)
		}

		lights = append(lights, scene.NewLight(position, color))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read lights file: %v", err)
	}

	return lights, nil
}
