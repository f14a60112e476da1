package console

import (
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minefield/game"
)

func readAll(t *testing.T, input string) ([]game.Direction, error) {
	t.Helper()

	director := New(strings.NewReader(input))
	director.Init(nil)

	var directions []game.Direction
	for {
		direction, err := director.Next()
		if err != nil {
			return directions, err
		}
		directions = append(directions, direction)
	}
}

func TestLetterKeys(t *testing.T) {
	directions, err := readAll(t, "wasd\nkhjl\nWD")

	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []game.Direction{
		game.Up, game.Left, game.Down, game.Right,
		game.Up, game.Left, game.Down, game.Right,
		game.Up, game.Right,
	}, directions)
}

func TestArrowKeys(t *testing.T) {
	directions, err := readAll(t, "\x1b[A\x1b[B\x1b[C\x1b[D\x1bOC")

	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []game.Direction{game.Up, game.Down, game.Right, game.Left, game.Right}, directions)
}

func TestModifiedArrowKeys(t *testing.T) {
	// Ctrl+Up, Ctrl+Left, Shift+Down, Alt+Right
	directions, err := readAll(t, "\x1b[1;5A\x1b[1;5D\x1b[1;2B\x1b[1;3C")

	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []game.Direction{game.Up, game.Left, game.Down, game.Right}, directions)
}

func TestDropsOtherEscapeSequences(t *testing.T) {
	// Delete, Page Up, F5, Ctrl+Home and F1, then a plain move
	directions, err := readAll(t, "\x1b[3~\x1b[5~\x1b[15~\x1b[1;5H\x1bOPs")

	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []game.Direction{game.Down}, directions)
}

func TestControlKeysQuit(t *testing.T) {
	for _, input := range []string{"\x03d", "\x04d"} {
		directions, err := readAll(t, input)

		assert.Equal(t, io.EOF, err)
		assert.Empty(t, directions)
	}
}

func TestIgnoresOtherInput(t *testing.T) {
	directions, err := readAll(t, "x 1\r\n\x1b[Z\x1bd")

	assert.Equal(t, io.EOF, err)
	assert.Equal(t, []game.Direction{game.Right}, directions)
}

func TestQuit(t *testing.T) {
	director := New(strings.NewReader("dqd"))

	direction, err := director.Next()
	require.NoError(t, err)
	assert.Equal(t, game.Right, direction)

	_, err = director.Next()
	assert.Equal(t, io.EOF, err)
}

func TestTruncatedEscape(t *testing.T) {
	_, err := readAll(t, "\x1b[")
	assert.Equal(t, io.EOF, err)
}

func TestPlaysGame(t *testing.T) {
	config := game.NewGameConfig()
	config.Snapshot = &game.BoardSnapshot{SerializedBoard: "##\n##"}

	engine, err := game.Run(config, New(strings.NewReader("dd")), io.Discard)
	require.NoError(t, err)

	assert.Equal(t, game.Won, engine.State())
}
