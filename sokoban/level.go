package sokoban

import (
	"strings"
)

// Tile is one cell of level text.
type Tile byte

const (
	TileFloor   Tile = '.'
	TileWall    Tile = 'W'
	TilePlayer  Tile = 'P'
	TileBox     Tile = 'B'
	TileBoxSpot Tile = 'S'
	TileVoid    Tile = 'N'
)

func parseTile(token string) (Tile, bool) {
	if len(token) != 1 {
		return 0, false
	}
	switch t := Tile(token[0]); t {
	case TileFloor, TileWall, TilePlayer, TileBox, TileBoxSpot, TileVoid:
		return t, true
	}
	return 0, false
}

// Layout is parsed level text. Rows may have different lengths.
type Layout struct {
	Rows [][]Tile
}

// Width is the length of the longest row.
func (l *Layout) Width() int {
	w := 0
	for _, row := range l.Rows {
		w = max(w, len(row))
	}
	return w
}

// Height is the number of rows.
func (l *Layout) Height() int {
	return len(l.Rows)
}

// Count returns how many cells hold tile t.
func (l *Layout) Count(t Tile) int {
	n := 0
	for _, row := range l.Rows {
		for _, tile := range row {
			if tile == t {
				n++
			}
		}
	}
	return n
}

// ParseLevel tokenizes level text. Rows are separated by line breaks, cells by
// spaces or tabs. Whitespace around the text and around each row is ignored.
// The first unrecognized token fails the whole parse with a *MapFormatError.
func ParseLevel(text string) (*Layout, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return &Layout{}, nil
	}

	lines := strings.Split(text, "\n")
	layout := &Layout{Rows: make([][]Tile, 0, len(lines))}
	for y, line := range lines {
		tokens := strings.Fields(line)
		row := make([]Tile, 0, len(tokens))
		for x, token := range tokens {
			tile, ok := parseTile(token)
			if !ok {
				return nil, &MapFormatError{Token: token, Row: y, Col: x}
			}
			row = append(row, tile)
		}
		layout.Rows = append(layout.Rows, row)
	}
	return layout, nil
}

// Spawn issues the creation calls for every cell. Players, boxes, spots and
// walls all stand on a floor entity of their own.
func (l *Layout) Spawn(s Spawner) {
	for y, row := range l.Rows {
		for x, tile := range row {
			if tile == TileVoid {
				continue
			}
			CreateFloor(s, x, y)
			switch tile {
			case TileWall:
				CreateWall(s, x, y)
			case TilePlayer:
				CreatePlayer(s, x, y)
			case TileBox:
				CreateBox(s, x, y)
			case TileBoxSpot:
				CreateBoxSpot(s, x, y)
			}
		}
	}
}

// LoadLevel parses text and, only if it parsed cleanly, issues its creation
// calls to s. On error nothing is spawned.
func LoadLevel(s Spawner, text string) (*Layout, error) {
	layout, err := ParseLevel(text)
	if err != nil {
		return nil, err
	}
	layout.Spawn(s)
	return layout, nil
}
