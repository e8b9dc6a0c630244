package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"neonsigil/internal/config"
	"neonsigil/internal/scene"
	"neonsigil/internal/timing"
)

var (
	flagSize     float64
	flagColor    string
	flagGlow     float64
	flagRotation float64
	flagPulse    bool
	verbose      bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "neonsigil",
	Short: "Animated neon mandala renderer",
	Long: `neonsigil opens a window and continuously renders a glowing mandala:
concentric rings on a black background with a crown of neon sigil ornaments
composited on top.

Space toggles pulsing, R rotates the ornaments, S exports a screenshot,
Esc or Q quits.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg := zap.NewProductionConfig()
		if verbose {
			cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = cfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.DefaultOrnament()
		cfg.Size = flagSize
		cfg.Glow = flagGlow
		cfg.Rotation = flagRotation
		cfg.Pulse = flagPulse

		c, err := config.ParseHexColor(flagColor)
		if err != nil {
			return err
		}
		cfg.Color = c

		if err := cfg.Validate(); err != nil {
			return err
		}

		logger.Info("Starting renderer",
			zap.Float64("size", cfg.Size),
			zap.String("color", flagColor),
			zap.Float64("glow", cfg.Glow),
			zap.Bool("pulse", cfg.Pulse))

		ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
		ebiten.SetWindowTitle(config.WindowTitle)
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

		app := scene.NewApp(logger, timing.NewSystemClock(), cfg)
		if err := ebiten.RunGame(app); err != nil && !errors.Is(err, ebiten.Termination) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.Flags().Float64Var(&flagSize, "size", config.DefaultSize, "ornament size in pixels")
	rootCmd.Flags().StringVar(&flagColor, "color", config.DefaultColorHex, "ornament color (#rrggbb)")
	rootCmd.Flags().Float64Var(&flagGlow, "glow", config.DefaultGlow, "glow blur radius in pixels")
	rootCmd.Flags().Float64Var(&flagRotation, "rotation", 0, "base ornament rotation in radians")
	rootCmd.Flags().BoolVar(&flagPulse, "pulse", false, "enable sinusoidal pulsing")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
