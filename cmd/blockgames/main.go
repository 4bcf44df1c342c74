// blockgames runs two small arcade minigames in the terminal: a falling-block
// stacker and a target shooter.
//
// Usage:
//
//	blockgames play          - Play in the terminal
//	blockgames headless      - Run the simulation with an autopilot, no terminal
//	blockgames list          - List the minigames
//	blockgames config        - Print the effective configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--config <path>       - Load tunables from a YAML file
//	--difficulty <mode>   - Preselect the block difficulty (1-3 or a name)
//	--db <dsn>            - Scoreboard database (default: in memory)
//	--log-level <level>   - debug, info, warn, error
//	--log-file <path>     - Write logs to a file
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/block-games/internal/config"
	"github.com/vovakirdan/block-games/internal/sim"
	"github.com/vovakirdan/block-games/internal/storage"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagDifficulty string
	flagDBPath     string
	flagLogLevel   string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "blockgames",
	Short: "Block Games - stack falling blocks and shoot targets in your terminal",
	Long: `Block Games hosts two minigames behind a title screen:

  Falling Blocks  - drop a sliding row onto the stack; overhangs are cut off
  Space Blocks    - move the ship and shoot the moving target

Available commands:
  play      - Play in the terminal
  headless  - Run the simulation with an autopilot
  list      - Show the minigames
  config    - Print the effective configuration

Examples:
  blockgames play
  blockgames play --difficulty advanced
  blockgames headless --frames 20000 --seed 7
  blockgames config > ~/.blockgames/config.yaml`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Block difficulty: 1-3 or easy, intermediate, advanced")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.MemoryDSN, "Scoreboard database")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(headlessCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger creates the logger for a command. Logs go to --log-file when
// set and to fallback otherwise. The returned closer releases the file.
func newLogger(fallback io.Writer) (*log.Logger, func(), error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid --log-level: %w", err)
	}

	w, closer := fallback, func() {}
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return nil, nil, fmt.Errorf("cannot open log file: %w", err)
		}
		w, closer = f, func() { f.Close() }
	}

	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "blockgames",
		Level:           level,
	})
	return logger, closer, nil
}

// newMachine loads the config and builds the simulation from the global flags.
func newMachine(logger *log.Logger) (*sim.Machine, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return nil, err
	}
	mode, err := cfg.ParseMode(flagDifficulty)
	if err != nil {
		return nil, err
	}
	return sim.New(cfg,
		sim.WithSeed(flagSeed),
		sim.WithMode(mode),
		sim.WithLogger(logger),
	)
}

// openStore opens the scoreboard. Failure is not fatal: the games run
// without a scoreboard.
func openStore(logger *log.Logger) *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		return nil
	}
	return store
}
