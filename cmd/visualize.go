package main

import (
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/pizzicato-game/pizzicato-game.github.io/core/model"
	"github.com/pizzicato-game/pizzicato-game.github.io/internal/config"
	game_log "github.com/pizzicato-game/pizzicato-game.github.io/internal/log"
	"github.com/pizzicato-game/pizzicato-game.github.io/internal/ui"
)

var opts struct {
	config   string
	logLevel string
}

var rootCmd = &cobra.Command{
	Use:   "visualize <csv_file>",
	Short: "Replay recorded finger tracking data",
	Long: `Visualize replays a Pizzicato recording one sample at a time: finger
positions, the target, the pinch distance and the pinch delay.

Use the Layer, Loop and Note buttons to jump around and the left/right
arrow keys to step through the notes of the current loop.`,
	Args:         cobra.ArbitraryArgs,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	rootCmd.Flags().StringVarP(&opts.config, "config", "c", "",
		"YAML file with viewer settings (log level, title, tick rate, colors)")
	rootCmd.Flags().StringVarP(&opts.logLevel, "log-level", "l", "",
		"Log level: debug, info, warn, error or none (overrides the config file)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return cmd.Usage()
	}

	cfg, err := config.Load(opts.config)
	if err != nil {
		return err
	}
	level := cfg.Level()
	if opts.logLevel != "" {
		l, ok := game_log.ParseLevel(opts.logLevel)
		if !ok {
			return fmt.Errorf("unknown log level %q", opts.logLevel)
		}
		level = l
	}
	logger := game_log.New(os.Stderr, level)

	ds, err := model.LoadFile(args[0], logger)
	if errors.Cause(err) == model.ErrNoData {
		fmt.Fprintln(cmd.OutOrStdout(), "No valid data found in CSV file.")
		return nil
	}
	if err != nil {
		return err
	}

	theme := ui.DefaultTheme()
	if err := cfg.ApplyColors(theme.Slots()); err != nil {
		return errors.Wrap(err, "applying config")
	}

	g := ui.New(ds, theme, logger)
	ebiten.SetWindowSize(ui.ScreenWidth, ui.ScreenHeight)
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowClosingHandled(true)

	logger.Infof("[GAME] Starting viewer for %s", args[0])
	return ebiten.RunGame(g)
}
