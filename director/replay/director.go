package replay

import (
	"io"

	"github.com/gammazero/deque"
	"github.com/they4kman/minefield/game"
)

// Director plays back a fixed list of moves, such as those recorded in a
// saved snapshot
type Director struct {
	moves deque.Deque
}

func New(directions []game.Direction) *Director {
	director := &Director{}
	for _, direction := range directions {
		director.moves.PushBack(direction)
	}
	return director
}

func FromSnapshot(snapshot *game.BoardSnapshot) (*Director, error) {
	directions, err := snapshot.Directions()
	if err != nil {
		return nil, err
	}
	return New(directions), nil
}

func (director *Director) Init(*game.Engine) {}

func (director *Director) Next() (game.Direction, error) {
	if director.moves.Len() == 0 {
		return 0, io.EOF
	}
	return director.moves.PopFront().(game.Direction), nil
}

// Remaining returns the number of moves not yet played
func (director *Director) Remaining() int {
	return director.moves.Len()
}
