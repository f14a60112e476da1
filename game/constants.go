package game

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

var Directions = []Direction{Up, Down, Left, Right}

var directionNames = map[Direction]string{
	Up:    "up",
	Down:  "down",
	Left:  "left",
	Right: "right",
}

var directionArrows = map[Direction]string{
	Up:    "↑",
	Down:  "↓",
	Left:  "←",
	Right: "→",
}

func (direction Direction) String() string {
	if name, ok := directionNames[direction]; ok {
		return name
	}
	return fmt.Sprintf("Direction(%d)", int(direction))
}

// Arrow returns the arrow symbol for the direction, or "" if unknown
func (direction Direction) Arrow() string {
	return directionArrows[direction]
}

// Delta returns the coordinate change a single step in this direction causes.
// y grows downwards.
func (direction Direction) Delta() (dx, dy int) {
	switch direction {
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

// ParseDirection accepts a direction name (case-insensitive) or arrow symbol
func ParseDirection(value string) (Direction, error) {
	value = strings.ToLower(strings.TrimSpace(value))
	for _, direction := range Directions {
		if value == directionNames[direction] || value == directionArrows[direction] {
			return direction, nil
		}
	}
	return 0, errors.Errorf("invalid direction %q", value)
}

type BoardState int

const (
	NotSetup BoardState = iota
	Ongoing
	Won
	Lost
)

func (state BoardState) String() string {
	switch state {
	case NotSetup:
		return "not setup"
	case Ongoing:
		return "ongoing"
	case Won:
		return "won"
	case Lost:
		return "lost"
	}
	return fmt.Sprintf("BoardState(%d)", int(state))
}

// Outcome describes what a single call to Engine.Move did
type Outcome int

const (
	Moved Outcome = iota
	LostLife
	GameWon
	GameLost
	RejectedOffGrid
	RejectedGameOver
	RejectedNotSetup
)

func (outcome Outcome) String() string {
	switch outcome {
	case Moved:
		return "moved"
	case LostLife:
		return "lost life"
	case GameWon:
		return "won"
	case GameLost:
		return "lost"
	case RejectedOffGrid:
		return "rejected: off grid"
	case RejectedGameOver:
		return "rejected: game over"
	case RejectedNotSetup:
		return "rejected: not setup"
	}
	return fmt.Sprintf("Outcome(%d)", int(outcome))
}

// Rejected reports whether the move left the engine untouched
func (outcome Outcome) Rejected() bool {
	return outcome >= RejectedOffGrid
}
