package sokoban

import (
	"errors"
	"fmt"
)

var (
	// ErrMapFormat matches every *MapFormatError.
	ErrMapFormat = errors.New("unrecognized map token")

	// ErrMissingPlayer is returned when a world has no Player entity.
	ErrMissingPlayer = errors.New("no player entity")

	// ErrNoLevel is returned by Restart before any level was loaded.
	ErrNoLevel = errors.New("no level loaded")

	// ErrEmptyLevelSet is returned when a level set has no levels.
	ErrEmptyLevelSet = errors.New("level set is empty")

	// ErrLevelIndex is returned for an out-of-range level index.
	ErrLevelIndex = errors.New("level index out of range")
)

// MapFormatError reports an unrecognized token in level text. Row and Col are
// zero-based and match the Y and X the cell would have had.
type MapFormatError struct {
	Token string
	Row   int
	Col   int
}

func (e *MapFormatError) Error() string {
	return fmt.Sprintf("unrecognized map token %q at row %d, column %d", e.Token, e.Row, e.Col)
}

// Is makes errors.Is(err, ErrMapFormat) hold.
func (e *MapFormatError) Is(target error) bool {
	return target == ErrMapFormat
}
