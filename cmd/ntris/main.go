// ntris is a terminal falling-block puzzle game in the NES style.
//
// Usage:
//
//	ntris                    - Play
//
// Flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--level <n>     - Preset the start-screen level cursor (1-10)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	// Import the game to register it
	_ "github.com/vovakirdan/ntris/internal/games/tetris"
)

// version is stamped at release time via -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	flagFPS   int
	flagSeed  int64
	flagLevel int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:     "ntris",
	Short:   "NTRIS - NES-style falling blocks in your terminal",
	Version: version,
	Long: `NTRIS is a terminal falling-block puzzle game. Clear lines, chase the
session high score, and watch gravity tighten as the level climbs.

Controls:
  Left/Right or A/D  - Move piece
  Down or S          - Soft drop
  Up or W            - Rotate
  Space              - Hard drop
  P                  - Pause
  Enter              - Start / play again
  Q / Ctrl+C         - Quit

Examples:
  ntris
  ntris --level 5
  ntris --fps 30 --seed 42`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	rootCmd.Flags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.Flags().IntVar(&flagLevel, "level", 1, "Start-screen level cursor preset (1-10)")
}
