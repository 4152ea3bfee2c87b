// Package levels embeds the level set shipped with the game.
package levels

import (
	"bytes"
	_ "embed"

	"github.com/plus3/sokoban/sokoban"
)

//go:embed classic.yaml
var classic []byte

// Classic returns the built-in level set.
func Classic() (*sokoban.LevelSet, error) {
	return sokoban.ParseLevelSet(bytes.NewReader(classic))
}
