// Command sparks shows looping glowing text banners with hearts converging on
// the center of the window. "sparks render" writes the same frames to PNG
// files without opening a window.
package main

import (
	"context"
	_ "embed"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/phanxgames/sparks"
	"github.com/spf13/cobra"
)

//go:embed scenes.yaml
var defaultScenes []byte

var (
	configFile string
	width      int
	height     int
	tps        int
	seed       uint64
	debug      bool
	showFPS    bool
	fullscreen bool
	frames     int
	every      int
	outDir     string
	scriptFile string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "sparks",
		Short: "glowing text banners with converging hearts",
		RunE:  runWindow,
	}
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "scene YAML file (default: built-in scenes)")
	rootCmd.PersistentFlags().IntVar(&width, "width", 1280, "surface width in pixels")
	rootCmd.PersistentFlags().IntVar(&height, "height", 720, "surface height in pixels")
	rootCmd.PersistentFlags().IntVar(&tps, "tps", sparks.DefaultTPS, "frames per second")
	rootCmd.PersistentFlags().Uint64Var(&seed, "seed", 0, "random seed (0 = random)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "print frame stats to stderr")
	rootCmd.Flags().BoolVar(&showFPS, "fps", false, "show FPS overlay")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "start fullscreen")

	renderCmd := &cobra.Command{
		Use:   "render",
		Short: "render frames to PNG files without a window",
		Args:  cobra.NoArgs,
		RunE:  runHeadless,
	}
	renderCmd.Flags().IntVar(&frames, "frames", 240, "number of frames to run")
	renderCmd.Flags().IntVar(&every, "every", 30, "write every Nth frame")
	renderCmd.Flags().StringVar(&outDir, "out", "frames", "output directory")
	renderCmd.Flags().StringVar(&scriptFile, "script", "", "JSON frame script (replaces --every; runs until the script ends or --frames)")
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEngine() (*sparks.Engine, error) {
	var (
		cfg *sparks.Config
		err error
	)
	if configFile != "" {
		cfg, err = sparks.LoadConfig(configFile)
	} else {
		cfg, err = sparks.ParseConfig(defaultScenes)
	}
	if err != nil {
		return nil, err
	}

	engine, err := sparks.NewEngine(cfg.Scenes(tps), sparks.Options{
		Width:  width,
		Height: height,
		TPS:    tps,
		Seed:   seed,
	})
	if err != nil {
		return nil, err
	}
	engine.SetDebugMode(debug)

	points := 0
	for _, m := range engine.Masks() {
		points += m.Len()
	}
	log.Printf("loaded %d scenes, %d mask points", len(cfg.Scenes), points)
	return engine, nil
}

func runWindow(cmd *cobra.Command, args []string) error {
	engine, err := newEngine()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return sparks.Run(ctx, engine, sparks.RunConfig{
		Title:      "sparks",
		Width:      width,
		Height:     height,
		ShowFPS:    showFPS,
		Fullscreen: fullscreen,
	})
}

func runHeadless(cmd *cobra.Command, args []string) error {
	if frames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", frames)
	}
	if every <= 0 {
		return fmt.Errorf("--every must be positive, got %d", every)
	}

	engine, err := newEngine()
	if err != nil {
		return err
	}
	engine.ScreenshotDir = outDir

	var runner *sparks.ScriptRunner
	if scriptFile != "" {
		data, err := os.ReadFile(scriptFile)
		if err != nil {
			return fmt.Errorf("failed to read frame script %s: %w", scriptFile, err)
		}
		runner, err = sparks.LoadScript(data)
		if err != nil {
			return err
		}
		engine.SetScript(runner)
	}

	surface := sparks.NewImageSurface(width, height)
	for i := 1; i <= frames && !engine.Stopped(); i++ {
		if runner == nil && i%every == 0 {
			engine.Screenshot(fmt.Sprintf("frame-%05d", i))
		}
		engine.Frame(surface)
		if runner != nil && runner.Done() {
			break
		}
	}
	log.Printf("rendered %d frames to %s", engine.Tick(), outDir)
	return nil
}
