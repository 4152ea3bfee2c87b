package sokoban

// Direction is a directional input token.
type Direction uint8

const (
	DirectionNone Direction = iota
	Up
	Down
	Left
	Right
)

// Delta returns the unit step for d. DirectionNone and unknown values map to
// (0,0).
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	}
	return 0, 0
}

// Valid reports whether d is one of the four directions.
func (d Direction) Valid() bool {
	return d >= Up && d <= Right
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	}
	return "none"
}

// InputQueue buffers pending directions between input capture and the
// movement system. It is drained from the tail: the most recent press is
// handled first.
type InputQueue struct {
	keys []Direction
}

// Push appends d. Invalid directions are dropped.
func (q *InputQueue) Push(d Direction) {
	if !d.Valid() {
		return
	}
	q.keys = append(q.keys, d)
}

// Pop removes and returns the most recently pushed direction.
func (q *InputQueue) Pop() (Direction, bool) {
	n := len(q.keys)
	if n == 0 {
		return DirectionNone, false
	}
	d := q.keys[n-1]
	q.keys = q.keys[:n-1]
	return d, true
}

// Len returns the number of pending directions.
func (q *InputQueue) Len() int {
	return len(q.keys)
}

// Pending returns a copy of the queue, oldest first.
func (q *InputQueue) Pending() []Direction {
	out := make([]Direction, len(q.keys))
	copy(out, q.keys)
	return out
}

// Clear drops every pending direction.
func (q *InputQueue) Clear() {
	q.keys = q.keys[:0]
}
