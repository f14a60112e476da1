package game

import "fmt"

// Position is a coordinate on the grid. (0, 0) is the top-left corner.
type Position struct {
	X, Y int
}

func (pos Position) String() string {
	return fmt.Sprintf("(%d, %d)", pos.X, pos.Y)
}

func (pos Position) Step(direction Direction) Position {
	dx, dy := direction.Delta()
	return Position{X: pos.X + dx, Y: pos.Y + dy}
}

// less orders positions row-major, matching the serialized board
func (pos Position) less(other Position) bool {
	if pos.Y != other.Y {
		return pos.Y < other.Y
	}
	return pos.X < other.X
}

// MoveResult is everything a caller needs to render a single move
type MoveResult struct {
	Direction Direction
	Outcome   Outcome

	Moved    bool
	HitMine  bool
	GameOver bool

	Position Position
	Lives    int
	Moves    int
}
