package console

import (
	"bufio"
	"io"

	"github.com/they4kman/minefield/game"
)

const (
	escape = 0x1b

	// In raw mode the terminal delivers these instead of signalling
	ctrlC = 0x03
	ctrlD = 0x04
)

var keys = map[byte]game.Direction{
	'w': game.Up,
	'k': game.Up,
	's': game.Down,
	'j': game.Down,
	'a': game.Left,
	'h': game.Left,
	'd': game.Right,
	'l': game.Right,
}

// ANSI cursor keys: ESC [ A..D, or ESC O A..D in application mode
var arrowKeys = map[byte]game.Direction{
	'A': game.Up,
	'B': game.Down,
	'C': game.Right,
	'D': game.Left,
}

// Director reads moves from keyboard input
type Director struct {
	in *bufio.Reader
}

func New(in io.Reader) *Director {
	return &Director{in: bufio.NewReader(in)}
}

func (director *Director) Init(*game.Engine) {}

// Next skips input until a movement key is read. q, Ctrl+C and Ctrl+D end input.
func (director *Director) Next() (game.Direction, error) {
	for {
		b, err := director.in.ReadByte()
		if err != nil {
			return 0, err
		}

		switch {
		case b == escape:
			direction, ok, err := director.readArrow()
			if err != nil {
				return 0, err
			}
			if ok {
				return direction, nil
			}
		case b == 'q' || b == 'Q' || b == ctrlC || b == ctrlD:
			return 0, io.EOF
		default:
			if direction, ok := keys[lower(b)]; ok {
				return direction, nil
			}
		}
	}
}

// readArrow consumes the rest of an escape sequence. CSI sequences
// (ESC [ params final) may carry modifiers, as in ESC [1;5A for Ctrl+Up; only
// the final byte picks the direction, and any other sequence is dropped.
func (director *Director) readArrow() (game.Direction, bool, error) {
	b, err := director.in.ReadByte()
	if err != nil {
		return 0, false, err
	}

	switch b {
	case 'O':
		b, err = director.in.ReadByte()
		if err != nil {
			return 0, false, err
		}
	case '[':
		for {
			b, err = director.in.ReadByte()
			if err != nil {
				return 0, false, err
			}
			if b >= 0x40 && b <= 0x7e {
				break
			}
		}
	default:
		return 0, false, director.in.UnreadByte()
	}

	direction, ok := arrowKeys[b]
	return direction, ok, nil
}

func lower(b byte) byte {
	if b >= 'A' && b <= 'Z' {
		return b + 'a' - 'A'
	}
	return b
}
