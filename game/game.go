package game

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

var (
	ErrInvalidDimension     = errors.New("dimension must be at least 1")
	ErrInvalidMineFrequency = errors.New("mine frequency must be between 0 and 100")
	ErrInvalidLives         = errors.New("lives must be at least 1")
)

type GameConfig struct {
	Lives         int   `yaml:"lives"`
	Dimension     int   `yaml:"dimension"`
	MineFrequency int   `yaml:"mine_frequency"`
	Seed          int64 `yaml:"seed"`

	// Whether mine locations are reported as the board is set up
	RevealMines bool `yaml:"reveal_mines"`

	// Path to directory where snapshots of finished games should be saved
	SavedSnapshotsDir string `yaml:"saved_snapshots_dir"`

	// Snapshot to load the mine layout from
	Snapshot *BoardSnapshot `yaml:"-"`

	// Called for every mine placed during Setup, when revealing mines
	OnMinePlaced func(Position) `yaml:"-"`

	Logger logrus.FieldLogger `yaml:"-"`
}

func NewGameConfig() GameConfig {
	return GameConfig{
		Lives:         3,
		Dimension:     8,
		MineFrequency: 10,
	}
}

func (config GameConfig) Validate() error {
	if config.Dimension < 1 {
		return errors.Wrapf(ErrInvalidDimension, "got %d", config.Dimension)
	}
	if config.MineFrequency < 0 || config.MineFrequency > 100 {
		return errors.Wrapf(ErrInvalidMineFrequency, "got %d", config.MineFrequency)
	}
	if config.Lives < 1 {
		return errors.Wrapf(ErrInvalidLives, "got %d", config.Lives)
	}
	return nil
}

// LoadGameConfig reads a YAML config file over the defaults
func LoadGameConfig(path string) (GameConfig, error) {
	config := NewGameConfig()

	b, err := os.ReadFile(path)
	if err != nil {
		return config, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(b, &config); err != nil {
		return config, errors.Wrapf(err, "parsing config %s", path)
	}
	return config, nil
}

func (config GameConfig) logger() logrus.FieldLogger {
	if config.Logger == nil {
		return discardLogger()
	}
	return config.Logger
}

func discardLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetOutput(io.Discard)
	return log
}

// Run sets up a game and plays the director's moves until the game ends or
// the director runs out. Every result is rendered to out.
func Run(config GameConfig, director Director, out io.Writer) (*Engine, error) {
	renderer := NewRenderer(out)
	if config.RevealMines && config.OnMinePlaced == nil {
		config.OnMinePlaced = renderer.Spoiler
	}

	engine, err := NewEngine(config)
	if err != nil {
		return nil, err
	}
	engine.Setup(config.RevealMines)
	director.Init(engine)

	for !engine.GameOver() {
		direction, err := director.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return engine, errors.Wrap(err, "reading move")
		}

		renderer.Render(engine.Move(direction))
	}

	if engine.GameOver() {
		config.onGameEnd(engine)
	}
	return engine, nil
}

func (config GameConfig) onGameEnd(engine *Engine) {
	if _, err := config.saveSnapshot(engine, time.Now()); err != nil {
		config.logger().WithError(err).Error("unable to save snapshot")
	}
}

// saveSnapshot writes the engine's snapshot to SavedSnapshotsDir, returning
// the path written, or "" if snapshots are disabled
func (config GameConfig) saveSnapshot(engine *Engine, t time.Time) (string, error) {
	if config.SavedSnapshotsDir == "" {
		return "", nil
	}

	stat, err := os.Stat(config.SavedSnapshotsDir)
	if err != nil {
		if !os.IsNotExist(err) {
			return "", errors.Wrap(err, "checking snapshots dir")
		}
		if err := os.MkdirAll(config.SavedSnapshotsDir, 0777); err != nil {
			return "", errors.Wrap(err, "creating snapshots dir")
		}
	} else if !stat.Mode().IsDir() {
		return "", errors.Errorf("%s is not a directory; cannot save snapshots to it", config.SavedSnapshotsDir)
	}

	serialized, err := engine.Snapshot().Serialize()
	if err != nil {
		return "", err
	}

	// TODO: prevent duplicate filenames when two games end in the same second
	path := filepath.Join(config.SavedSnapshotsDir, generateReplayFilename(engine, t))
	if err := os.WriteFile(path, []byte(serialized), 0666); err != nil {
		return "", errors.Wrap(err, "writing snapshot")
	}

	config.logger().WithField("path", path).Info("saved snapshot")
	return path, nil
}

func generateReplayFilename(engine *Engine, t time.Time) string {
	filenameBuilder := strings.Builder{}

	filenameBuilder.WriteString(t.Format("20060102_150405_"))

	var stateStr string
	switch engine.State() {
	case Won:
		stateStr = "win"
	case Lost:
		stateStr = "loss"
	default:
		stateStr = "other"
	}
	filenameBuilder.WriteString(stateStr)

	filenameBuilder.WriteString(".yaml")

	return filenameBuilder.String()
}
