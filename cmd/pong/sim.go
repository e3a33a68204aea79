package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-pong/internal/config"
	"github.com/vovakirdan/tui-pong/internal/core"
	"github.com/vovakirdan/tui-pong/internal/platform/tui"
	"github.com/vovakirdan/tui-pong/internal/pong"
)

var (
	flagSimTicks  uint64
	flagSimStep   string
	flagSimScript string
	flagSimYAML   bool
	flagSimWidth  int
	flagSimHeight int
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Run a headless simulation with scripted input",
	Long: `Run the game without a terminal UI, feeding it scripted input with a
fixed step, and print the final frame.

Script entries are comma separated, "action@tick" or "action@from-to".
Ticks count from 1. Actions: lup, ldown, rup, rdown, start, quit.

Examples:
  pong sim --ticks 600 --script "start@1,ldown@200-260"
  pong sim --ticks 3000 --script "start@1" --yaml
  pong sim --step 10ms --log-level debug`,
	Args: cobra.NoArgs,
	RunE: runSim,
}

func init() {
	simCmd.Flags().Uint64Var(&flagSimTicks, "ticks", 600, "Number of ticks to simulate")
	simCmd.Flags().StringVar(&flagSimStep, "step", "1/60", "Simulation step, a fraction of a second or a duration")
	simCmd.Flags().StringVar(&flagSimScript, "script", "", "Scripted input, e.g. \"start@1,ldown@200-260\"")
	simCmd.Flags().BoolVar(&flagSimYAML, "yaml", false, "Print the final frame as YAML")
	simCmd.Flags().IntVar(&flagSimWidth, "width", 80, "Text render width")
	simCmd.Flags().IntVar(&flagSimHeight, "height", 24, "Text render height")
}

func runSim(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger, err := newLogger(os.Stderr)
	if err != nil {
		return err
	}

	step, err := parseStep(flagSimStep)
	if err != nil {
		return err
	}
	if !cmd.Flags().Changed("step") && flagFixedStep > 0 {
		step = flagFixedStep
	}
	sc, err := parseScript(flagSimScript)
	if err != nil {
		return err
	}

	frame := simulate(cfg, sc, flagSimTicks, step, logger)
	return printFrame(cmd.OutOrStdout(), frame, cfg.Arena)
}

// simulate runs the game for up to ticks fixed steps and returns the last
// frame. It stops early when the game asks to quit.
func simulate(cfg config.PongConfig, sc script, ticks uint64, step time.Duration, logger *log.Logger) pong.Frame {
	game := pong.New(cfg, pong.WithLogger(logger))
	frame := game.Frame()
	for tick := uint64(1); tick <= ticks; tick++ {
		frame = game.Tick(step, sc.Frame(tick))
		if frame.Quit {
			logger.Info("quit requested", "tick", tick)
			break
		}
	}
	return frame
}

func printFrame(w io.Writer, f pong.Frame, a config.Arena) error {
	if flagSimYAML {
		data, err := yaml.Marshal(f)
		if err != nil {
			return fmt.Errorf("cannot encode frame: %w", err)
		}
		_, err = w.Write(data)
		return err
	}

	s := core.NewScreen(flagSimWidth, flagSimHeight)
	tui.DrawFrame(s, f, a)
	_, err := fmt.Fprintf(w, "%s\ntick %d  state %s  score %s\n", s.String(), f.Tick, f.State, f.Score)
	return err
}
