package game

import (
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"
)

const (
	snapshotFree = '#'
	snapshotMine = 'O'
)

// BoardSnapshot records a mine layout and the moves played on it
type BoardSnapshot struct {
	Seed            int64  `yaml:"seed"`
	Dimension       int    `yaml:"dimension"`
	Lives           int    `yaml:"lives"`
	MineFrequency   int    `yaml:"mine_frequency"`
	SerializedBoard string `yaml:"board,flow"`
	Moves           string `yaml:"moves"`
}

func (snapshot *BoardSnapshot) Serialize() (string, error) {
	out, err := yaml.Marshal(snapshot)
	if err != nil {
		return "", errors.Wrap(err, "serializing snapshot")
	}
	return string(out), nil
}

// Layout parses the serialized board into its mines and dimension.
// The board must be square, one row per line.
func (snapshot *BoardSnapshot) Layout() ([]Position, int, error) {
	board := strings.TrimRight(snapshot.SerializedBoard, "\n")
	if board == "" {
		return nil, 0, errors.New("snapshot board is empty")
	}

	rows := strings.Split(board, "\n")
	dimension := len(rows)

	mines := make([]Position, 0)
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != dimension {
			return nil, 0, errors.Errorf("snapshot row %d has %d cells, expected %d", y, len(cells), dimension)
		}

		for x, c := range cells {
			switch c {
			case snapshotMine:
				mines = append(mines, Position{X: x, Y: y})
			case snapshotFree:
			default:
				return nil, 0, errors.Errorf("snapshot cell (%d, %d) has invalid character %q", x, y, c)
			}
		}
	}

	return mines, dimension, nil
}

// Directions parses the recorded moves
func (snapshot *BoardSnapshot) Directions() ([]Direction, error) {
	directions := make([]Direction, 0, len(snapshot.Moves))
	for i, symbol := range []rune(snapshot.Moves) {
		direction, err := ParseDirection(string(symbol))
		if err != nil {
			return nil, errors.Wrapf(err, "snapshot move %d", i)
		}
		directions = append(directions, direction)
	}
	return directions, nil
}

func LoadSnapshot(in string) (*BoardSnapshot, error) {
	var snapshot BoardSnapshot
	if err := yaml.Unmarshal([]byte(in), &snapshot); err != nil {
		return nil, errors.Wrap(err, "parsing snapshot")
	}
	return &snapshot, nil
}

// Snapshot captures the current layout and the moves applied since Setup
func (engine *Engine) Snapshot() *BoardSnapshot {
	var board strings.Builder
	for y := 0; y < engine.dimension; y++ {
		if y > 0 {
			board.WriteByte('\n')
		}
		for x := 0; x < engine.dimension; x++ {
			if engine.mines.Contains(Position{X: x, Y: y}) {
				board.WriteRune(snapshotMine)
			} else {
				board.WriteRune(snapshotFree)
			}
		}
	}

	var moves strings.Builder
	for _, direction := range engine.history {
		moves.WriteString(direction.Arrow())
	}

	return &BoardSnapshot{
		Seed:            engine.seed,
		Dimension:       engine.dimension,
		Lives:           engine.startLives,
		MineFrequency:   engine.mineFrequency,
		SerializedBoard: board.String(),
		Moves:           moves.String(),
	}
}
