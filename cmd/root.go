// cmd/root.go
package cmd

import (
	"errors"
	"fmt"
	"os"

	"go-particle-field/internal/app"
	"go-particle-field/internal/config"
	"go-particle-field/internal/event"
	"go-particle-field/internal/observability"
	"go-particle-field/internal/schedule"
	"go-particle-field/internal/system"
	"go-particle-field/internal/ui"
	"go-particle-field/internal/utils"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	cfgFile     string
	flagWidth   int
	flagHeight  int
	flagSeed    int64
	flagVisuals string
	flagOverlay bool
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:     "field",
	Short:   "Decorative animated particle background.",
	Version: Version,
	RunE:    run,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is ./field.yaml)")
	rootCmd.Flags().IntVar(&flagWidth, "width", 0, "window width, overrides config")
	rootCmd.Flags().IntVar(&flagHeight, "height", 0, "window height, overrides config")
	rootCmd.Flags().Int64Var(&flagSeed, "seed", 0, "particle RNG seed, 0 means time-based")
	rootCmd.Flags().StringVar(&flagVisuals, "visuals", "", `visuals attribute: "on", "off" or empty`)
	rootCmd.Flags().BoolVar(&flagOverlay, "overlay", false, "show the debug overlay (F1 toggles at runtime)")
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

func run(cmd *cobra.Command, args []string) error {
	settings, err := config.Load(cfgFile)
	if err != nil {
		return err
	}
	applyFlags(cmd, settings)

	log := observability.Init(settings.Logger)
	defer observability.Sync()
	log.Info("starting particle field",
		zap.String("version", Version),
		zap.Int("width", settings.Window.Width),
		zap.Int("height", settings.Window.Height),
		zap.String("visuals", settings.Visuals.Visuals))

	dispatcher := event.NewDispatcher()
	scheduler := schedule.NewTickScheduler()
	rng := utils.NewPRNGService(settings.Visuals.Seed)
	controller := app.NewController(settings, scheduler, dispatcher, rng, log)

	overlay, err := ui.NewOverlay()
	if err != nil {
		return fmt.Errorf("creating debug overlay: %w", err)
	}
	game := app.NewGame(controller, scheduler, dispatcher, system.NewRenderSystem(), overlay, settings.Visuals.Overlay)

	ebiten.SetWindowSize(settings.Window.Width, settings.Window.Height)
	ebiten.SetWindowTitle(settings.Window.Title)
	if settings.Window.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	controller.Init(float64(settings.Window.Width), float64(settings.Window.Height), ebiten.Monitor().DeviceScaleFactor())

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

// applyFlags накладывает явно заданные флаги поверх файла и окружения.
func applyFlags(cmd *cobra.Command, settings *config.Settings) {
	if cmd.Flags().Changed("width") {
		settings.Window.Width = flagWidth
	}
	if cmd.Flags().Changed("height") {
		settings.Window.Height = flagHeight
	}
	if cmd.Flags().Changed("seed") {
		settings.Visuals.Seed = flagSeed
	}
	if cmd.Flags().Changed("visuals") {
		settings.Visuals.Visuals = flagVisuals
	}
	if cmd.Flags().Changed("overlay") {
		settings.Visuals.Overlay = flagOverlay
	}
}
