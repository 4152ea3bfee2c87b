package sokoban

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/cespare/xxhash/v2"
	"gopkg.in/yaml.v3"
)

// Level is a named map in level text format.
type Level struct {
	Name string `yaml:"name"`
	Map  string `yaml:"map"`
}

// Checksum hashes the map with surrounding whitespace and per-row indentation
// removed, so reformatting a level file does not change it.
func (l Level) Checksum() uint64 {
	return xxhash.Sum64String(normalizeMap(l.Map))
}

func normalizeMap(text string) string {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}
	return strings.Join(lines, "\n")
}

// LevelSet is an ordered collection of levels.
type LevelSet struct {
	Levels []Level `yaml:"levels"`
}

// ParseLevelSet decodes a YAML level set and checks every map's grammar.
func ParseLevelSet(r io.Reader) (*LevelSet, error) {
	var set LevelSet
	if err := yaml.NewDecoder(r).Decode(&set); err != nil {
		if err == io.EOF {
			return nil, ErrEmptyLevelSet
		}
		return nil, fmt.Errorf("decode level set: %w", err)
	}
	if len(set.Levels) == 0 {
		return nil, ErrEmptyLevelSet
	}

	for i, level := range set.Levels {
		if _, err := ParseLevel(level.Map); err != nil {
			return nil, fmt.Errorf("level %d (%s): %w", i, level.Name, err)
		}
	}
	return &set, nil
}

// LoadLevelSet reads a YAML level set from a file.
func LoadLevelSet(path string) (*LevelSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open level set %s: %w", path, err)
	}
	defer f.Close()

	set, err := ParseLevelSet(f)
	if err != nil {
		return nil, fmt.Errorf("level set %s: %w", path, err)
	}
	return set, nil
}

// Len returns the number of levels.
func (s *LevelSet) Len() int {
	return len(s.Levels)
}

// Level returns the level at index i.
func (s *LevelSet) Level(i int) (Level, error) {
	if i < 0 || i >= len(s.Levels) {
		return Level{}, fmt.Errorf("%w: %d not in [0,%d)", ErrLevelIndex, i, len(s.Levels))
	}
	return s.Levels[i], nil
}

// Find returns the index of the level with the given checksum.
func (s *LevelSet) Find(checksum uint64) (int, bool) {
	for i, level := range s.Levels {
		if level.Checksum() == checksum {
			return i, true
		}
	}
	return 0, false
}
