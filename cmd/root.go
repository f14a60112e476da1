package cmd

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/they4kman/minefield/director/console"
	"github.com/they4kman/minefield/director/replay"
	"github.com/they4kman/minefield/game"
)

var flagConfig = game.NewGameConfig()

var (
	configPath   string
	snapshotPath string
	replayMoves  bool
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "minefield",
	Short: "Cross a minefield one step at a time",
	Long: `minefield is a console game: start in the top-left corner of the
grid and reach the right-hand edge without running out of lives.

Move with the arrow keys, wasd or hjkl, and quit with q
	minefield

Show where the mines are, on a bigger board
	minefield -r -n 12

Replay a saved game
	minefield --snapshot 20260101_120000_loss.yaml --replay
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(verbose)

		config, err := loadConfig(cmd.Flags())
		if err != nil {
			return err
		}
		config.Logger = log

		director, err := newDirector(config)
		if err != nil {
			return err
		}

		log.WithFields(logrus.Fields{
			"lives":          config.Lives,
			"dimension":      config.Dimension,
			"mine_frequency": config.MineFrequency,
			"replay":         replayMoves,
		}).Debug("starting game")

		out := cmd.OutOrStdout()
		if !replayMoves {
			restore, raw, err := rawMode(os.Stdin)
			if err != nil {
				return err
			}
			defer restore()

			if raw {
				out = crlfWriter{out: out}
				log.SetOutput(crlfWriter{out: os.Stderr})
			}
		}

		engine, err := game.Run(config, director, out)
		if err != nil {
			return err
		}
		if !engine.GameOver() {
			log.WithField("moves", engine.Moves()).Info("game abandoned")
		}
		return nil
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{})

	if verbose {
		log.SetLevel(logrus.DebugLevel)
	} else {
		log.SetLevel(logrus.InfoLevel)
	}
	return log
}

// loadConfig layers the config file, then the snapshot, then any flags set
// explicitly on the command line
func loadConfig(flags *pflag.FlagSet) (game.GameConfig, error) {
	config := game.NewGameConfig()

	if configPath != "" {
		var err error
		if config, err = game.LoadGameConfig(configPath); err != nil {
			return config, err
		}
	}

	if snapshotPath != "" {
		b, err := os.ReadFile(snapshotPath)
		if err != nil {
			return config, errors.Wrap(err, "reading snapshot")
		}
		snapshot, err := game.LoadSnapshot(string(b))
		if err != nil {
			return config, err
		}

		config.Snapshot = snapshot
		if snapshot.Lives > 0 {
			config.Lives = snapshot.Lives
		}
		config.MineFrequency = snapshot.MineFrequency
	}

	if flags.Changed("lives") {
		config.Lives = flagConfig.Lives
	}
	if flags.Changed("dimension") {
		config.Dimension = flagConfig.Dimension
	}
	if flags.Changed("frequency") {
		config.MineFrequency = flagConfig.MineFrequency
	}
	if flags.Changed("seed") {
		config.Seed = flagConfig.Seed
	}
	if flags.Changed("reveal-mines") {
		config.RevealMines = flagConfig.RevealMines
	}
	if flags.Changed("save-snapshots") {
		config.SavedSnapshotsDir = flagConfig.SavedSnapshotsDir
	}

	return config, nil
}

func newDirector(config game.GameConfig) (game.Director, error) {
	if !replayMoves {
		return console.New(os.Stdin), nil
	}
	if config.Snapshot == nil {
		return nil, errors.New("--replay requires --snapshot")
	}
	director, err := replay.FromSnapshot(config.Snapshot)
	if err != nil {
		return nil, err
	}
	return director, nil
}

func init() {
	rootCmd.Flags().IntVarP(&flagConfig.Lives, "lives", "l", flagConfig.Lives, "Number of lives to start with")
	rootCmd.Flags().IntVarP(&flagConfig.Dimension, "dimension", "n", flagConfig.Dimension, "Width and height of the grid, in cells")
	rootCmd.Flags().IntVarP(&flagConfig.MineFrequency, "frequency", "f", flagConfig.MineFrequency, "Chance of each cell holding a mine, in percent")
	rootCmd.Flags().Int64Var(&flagConfig.Seed, "seed", 0, "Seed for mine placement (0 picks one from the clock)")
	rootCmd.Flags().BoolVarP(&flagConfig.RevealMines, "reveal-mines", "r", false, "Print the location of every mine before play starts")
	rootCmd.Flags().StringVar(&flagConfig.SavedSnapshotsDir, "save-snapshots", "", "Directory to save a snapshot of each finished game to")

	rootCmd.Flags().StringVarP(&configPath, "config", "c", "", "YAML file to read game settings from")
	rootCmd.Flags().StringVar(&snapshotPath, "snapshot", "", "Snapshot to load the mine layout from")
	rootCmd.Flags().BoolVar(&replayMoves, "replay", false, "Replay the moves recorded in --snapshot instead of reading the keyboard")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log every move")
}
