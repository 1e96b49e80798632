// Package levels loads brick level packs from YAML.
//
// A pack lists levels in play order. Each level gives its cells either as
// integer rows (0 empty, 1 normal, 2 strong, 3 invulnerable) or as an ASCII
// map:
//
//	'.' = empty
//	'#' = normal brick
//	'H' = strong brick (two hits)
//	'X' = invulnerable brick
package levels

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/bricks/internal/bricks"
)

//go:embed classic.yaml
var classicYAML []byte

// Pack is the YAML document layout.
type Pack struct {
	Name   string     `yaml:"name"`
	Levels []LevelDoc `yaml:"levels"`
}

// LevelDoc is one level entry of a pack.
type LevelDoc struct {
	ID   string   `yaml:"id"`
	Name string   `yaml:"name"`
	Rows [][]int  `yaml:"rows,omitempty"`
	Map  []string `yaml:"map,omitempty"`
}

// Default returns the built-in catalog.
func Default() *bricks.Catalog {
	c, err := Parse(classicYAML)
	if err != nil {
		return bricks.ClassicCatalog()
	}
	return c
}

// DefaultYAML returns the built-in pack source.
func DefaultYAML() []byte {
	return classicYAML
}

// Load returns the catalog at path, or the built-in one when path is empty.
func Load(path string) (*bricks.Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads and validates a level pack file.
func LoadFile(path string) (*bricks.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read level pack %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("level pack %s: %w", path, err)
	}
	return c, nil
}

// Parse decodes a pack and builds a validated catalog.
func Parse(data []byte) (*bricks.Catalog, error) {
	var pack Pack
	if err := yaml.Unmarshal(data, &pack); err != nil {
		return nil, fmt.Errorf("failed to parse level pack: %w", err)
	}

	levels := make([]bricks.Level, 0, len(pack.Levels))
	for i, doc := range pack.Levels {
		id := doc.ID
		if id == "" {
			id = fmt.Sprintf("level-%d", i+1)
		}
		name := doc.Name
		if name == "" {
			name = id
		}

		var rows [][]bricks.Kind
		switch {
		case len(doc.Rows) > 0 && len(doc.Map) > 0:
			return nil, &bricks.LevelError{Level: id, Row: -1, Col: -1, Reason: "both rows and map given"}
		case len(doc.Map) > 0:
			parsed, err := parseMap(id, doc.Map)
			if err != nil {
				return nil, err
			}
			rows = parsed
		default:
			rows = bricks.KindsFromInts(doc.Rows)
		}
		levels = append(levels, bricks.Level{ID: id, Name: name, Rows: rows})
	}
	return bricks.NewCatalog(levels)
}

func parseMap(id string, lines []string) ([][]bricks.Kind, error) {
	rows := make([][]bricks.Kind, len(lines))
	for r, line := range lines {
		row := make([]bricks.Kind, 0, len(line))
		for c, ch := range line {
			switch ch {
			case '.':
				row = append(row, bricks.KindEmpty)
			case '#':
				row = append(row, bricks.KindNormal)
			case 'H', 'h':
				row = append(row, bricks.KindStrong)
			case 'X', 'x':
				row = append(row, bricks.KindInvulnerable)
			default:
				return nil, &bricks.LevelError{
					Level:  id,
					Row:    r,
					Col:    c,
					Reason: fmt.Sprintf("unknown map character %q", ch),
				}
			}
		}
		rows[r] = row
	}
	return rows, nil
}
