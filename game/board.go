package game

import (
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/they4kman/minefield/util/collections"
)

// Engine owns the state of a single game: the mine layout, where the player
// is, and how many lives and moves they have. It is not safe for concurrent
// use; one player drives it one move at a time.
type Engine struct {
	dimension     int
	mineFrequency int
	seed          int64
	rand          *rand.Rand

	// Mine layout to use instead of random draws, if any
	fixedMines []Position

	onMinePlaced func(Position)
	log          logrus.FieldLogger

	mines      collections.Set[Position]
	position   Position
	startLives int
	lives      int
	moves      int
	state      BoardState
	history    []Direction
}

// NewEngine validates config and returns an engine waiting for Setup
func NewEngine(config GameConfig) (*Engine, error) {
	var fixedMines []Position

	if config.Snapshot != nil {
		mines, dimension, err := config.Snapshot.Layout()
		if err != nil {
			return nil, err
		}
		fixedMines = mines
		config.Dimension = dimension
		config.Seed = config.Snapshot.Seed
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	return &Engine{
		dimension:     config.Dimension,
		mineFrequency: config.MineFrequency,
		seed:          seed,
		rand:          rand.New(rand.NewSource(seed)),
		fixedMines:    fixedMines,
		onMinePlaced:  config.OnMinePlaced,
		log:           config.logger(),
		mines:         make(collections.Set[Position]),
		startLives:    config.Lives,
		lives:         config.Lives,
		state:         NotSetup,
	}, nil
}

// Setup lays out a fresh set of mines and puts the player back at (0, 0).
// Lives are left as configured. If revealMines is set, every mine is
// reported as it is placed. A finished game stays finished; start a new
// engine instead.
func (engine *Engine) Setup(revealMines bool) {
	if engine.GameOver() {
		engine.log.WithField("state", engine.state).Warn("setup called on a finished game")
		return
	}

	engine.mines.Clear()

	place := func(pos Position) {
		engine.mines.Add(pos)
		if revealMines {
			engine.log.WithFields(logrus.Fields{"x": pos.X, "y": pos.Y}).Debug("Spoiler: added mine")
			if engine.onMinePlaced != nil {
				engine.onMinePlaced(pos)
			}
		}
	}

	if engine.fixedMines != nil {
		for _, pos := range engine.fixedMines {
			place(pos)
		}
	} else {
		for x := 0; x < engine.dimension; x++ {
			for y := 0; y < engine.dimension; y++ {
				if engine.rand.Intn(100) < engine.mineFrequency {
					place(Position{X: x, Y: y})
				}
			}
		}
	}

	engine.position = Position{}
	engine.moves = 0
	engine.history = engine.history[:0]
	engine.state = Ongoing

	engine.log.WithFields(logrus.Fields{
		"dimension":      engine.dimension,
		"mine_frequency": engine.mineFrequency,
		"lives":          engine.lives,
		"seed":           engine.seed,
		"mines":          engine.mines.Len(),
	}).Debug("board set up")
}

// Move attempts a single step. Rejected moves leave the engine untouched.
func (engine *Engine) Move(direction Direction) MoveResult {
	switch engine.state {
	case NotSetup:
		return engine.reject(direction, RejectedNotSetup)
	case Won, Lost:
		return engine.reject(direction, RejectedGameOver)
	}

	next := engine.position.Step(direction)
	if next == engine.position || !engine.inBounds(next) {
		return engine.reject(direction, RejectedOffGrid)
	}

	engine.position = next
	engine.moves++
	engine.history = append(engine.history, direction)

	result := MoveResult{Direction: direction, Moved: true}

	switch {
	case next.X >= engine.dimension:
		engine.state = Won
		result.Outcome = GameWon
	case engine.mines.Contains(next):
		engine.lives--
		result.HitMine = true
		if engine.lives == 0 {
			engine.state = Lost
			result.Outcome = GameLost
		} else {
			result.Outcome = LostLife
		}
	default:
		result.Outcome = Moved
	}

	engine.fill(&result)

	entry := engine.log.WithFields(logrus.Fields{
		"direction": direction,
		"x":         next.X,
		"y":         next.Y,
		"lives":     engine.lives,
		"moves":     engine.moves,
	})
	if result.GameOver {
		entry.WithField("state", engine.state).Info("game over")
	} else {
		entry.WithField("outcome", result.Outcome).Debug("moved")
	}

	return result
}

func (engine *Engine) reject(direction Direction, outcome Outcome) MoveResult {
	result := MoveResult{Direction: direction, Outcome: outcome}
	engine.fill(&result)

	engine.log.WithFields(logrus.Fields{
		"direction": direction,
		"x":         engine.position.X,
		"y":         engine.position.Y,
	}).Debug(outcome.String())

	return result
}

func (engine *Engine) fill(result *MoveResult) {
	result.GameOver = engine.GameOver()
	result.Position = engine.position
	result.Lives = engine.lives
	result.Moves = engine.moves
}

// inBounds allows stepping onto coordinate == dimension; for X that is the win edge
func (engine *Engine) inBounds(pos Position) bool {
	return pos.X >= 0 && pos.Y >= 0 && pos.X <= engine.dimension && pos.Y <= engine.dimension
}

func (engine *Engine) Dimension() int {
	return engine.dimension
}

func (engine *Engine) Seed() int64 {
	return engine.seed
}

func (engine *Engine) Position() Position {
	return engine.position
}

func (engine *Engine) Lives() int {
	return engine.lives
}

func (engine *Engine) Moves() int {
	return engine.moves
}

func (engine *Engine) State() BoardState {
	return engine.state
}

func (engine *Engine) GameOver() bool {
	return engine.state == Won || engine.state == Lost
}

func (engine *Engine) IsMine(pos Position) bool {
	return engine.mines.Contains(pos)
}

// Mines returns the mine layout in row-major order
func (engine *Engine) Mines() []Position {
	mines := engine.mines.Values()
	sort.Slice(mines, func(i, j int) bool {
		return mines[i].less(mines[j])
	})
	return mines
}

// History returns the directions of every applied move since Setup
func (engine *Engine) History() []Direction {
	history := make([]Direction, len(engine.history))
	copy(history, engine.history)
	return history
}
