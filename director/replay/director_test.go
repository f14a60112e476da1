package replay

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minefield/game"
)

func TestPlaysMovesInOrder(t *testing.T) {
	director := New([]game.Direction{game.Down, game.Right, game.Up})
	assert.Equal(t, 3, director.Remaining())

	for _, expected := range []game.Direction{game.Down, game.Right, game.Up} {
		direction, err := director.Next()
		require.NoError(t, err)
		assert.Equal(t, expected, direction)
	}

	_, err := director.Next()
	assert.Equal(t, io.EOF, err)
	assert.Equal(t, 0, director.Remaining())
}

func TestFromSnapshotInvalidMoves(t *testing.T) {
	_, err := FromSnapshot(&game.BoardSnapshot{Moves: "↑?"})
	assert.Error(t, err)
}

func TestReplaysSavedGame(t *testing.T) {
	snapshot := &game.BoardSnapshot{
		Lives:           2,
		SerializedBoard: "#O#\n#O#\n###",
		Moves:           "↓→→↑→",
	}

	director, err := FromSnapshot(snapshot)
	require.NoError(t, err)

	config := game.NewGameConfig()
	config.Lives = snapshot.Lives
	config.Snapshot = snapshot

	var out bytes.Buffer
	engine, err := game.Run(config, director, &out)
	require.NoError(t, err)

	// down, then right onto (1,1) and right to (2,1), up to (2,0), right to win
	assert.Equal(t, game.Won, engine.State())
	assert.Equal(t, 1, engine.Lives())
	assert.Equal(t, 5, engine.Moves())
	assert.Equal(t, 0, director.Remaining())
	assert.Contains(t, out.String(), "Remaining lives: 1")
}
