package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image/png"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/go-whitted-raytracer/pkg/geometry"
	"github.com/df07/go-whitted-raytracer/pkg/loaders"
	"github.com/df07/go-whitted-raytracer/pkg/logger"
	"github.com/df07/go-whitted-raytracer/pkg/renderer"
	"github.com/df07/go-whitted-raytracer/pkg/scene"
)

// options holds the parsed command line
type options struct {
	scene      string
	width      int
	height     int
	samples    int
	depth      int
	workers    int
	tileSize   int
	logLevel   string
	logFile    string
	outputPath string
	help       bool
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func parseFlags(args []string) (options, *flag.FlagSet, error) {
	var opts options
	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.StringVar(&opts.scene, "scene", "default", "Built-in scene id, yaml:<name>, or path to a .yaml scene file")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels (0 = scene default)")
	fs.IntVar(&opts.height, "height", 0, "Image height in pixels (0 = scene default)")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel (0 = scene default)")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum reflection/refraction depth (0 = scene default)")
	fs.IntVar(&opts.workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	fs.IntVar(&opts.tileSize, "tile", renderer.DefaultTileSize, "Tile edge length in pixels")
	fs.StringVar(&opts.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	fs.StringVar(&opts.logFile, "log-file", "", "Also write logs to this file")
	fs.StringVar(&opts.outputPath, "output", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	return opts, fs, nil
}

func run(args []string, stdout io.Writer) error {
	opts, fs, err := parseFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	if opts.help {
		printHelp(stdout, fs)
		return nil
	}

	var log *logger.Logger
	if opts.logFile != "" {
		if log, err = logger.NewMultiLogger(opts.logLevel, opts.logFile); err != nil {
			return err
		}
		defer log.Close()
	} else {
		log = logger.NewLogger(opts.logLevel)
	}

	log.Infof("Starting Whitted Raytracer...")

	overrides := geometry.CameraConfig{Width: opts.width, Height: opts.height}
	selectedScene, err := createScene(opts.scene, overrides)
	if err != nil {
		return err
	}
	log.Infof("Using %s scene (%d objects)", selectedScene.Name, selectedScene.GetPrimitiveCount())

	outputPath := opts.outputPath
	if outputPath == "" {
		timestamp := time.Now().Format("20060102_150405")
		outputPath = filepath.Join(createOutputDir(opts.scene), fmt.Sprintf("render_%s.png", timestamp))
	}
	if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
		return fmt.Errorf("error creating output directory: %w", err)
	}

	config := renderer.DefaultRenderConfig()
	config.TileSize = opts.tileSize
	config.NumWorkers = opts.workers
	config.SamplesPerPixel = opts.samples
	config.MaxDepth = opts.depth

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	raytracer := renderer.NewRaytracer(selectedScene, config, log)
	canvas, stats, err := raytracer.Render(ctx, func(result renderer.TileCompletionResult) {
		log.Debugf("Tile %d/%d done", result.TileNumber, result.TotalTiles)
	})
	if err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	img := canvas.ToRGBA()
	log.Infof("Rendered %d tiles in %v, average luminance %.3f",
		stats.TilesRendered, stats.Duration, renderer.CalculateAverageLuminance(img))

	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("error creating file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return fmt.Errorf("error saving PNG: %w", err)
	}

	log.Infof("Render saved as %s", outputPath)
	return nil
}

func printHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Whitted Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scene.BuiltinScenes() {
		fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.Description)
	}
	if files, err := scene.ListSceneFiles(); err == nil {
		for _, info := range files {
			fmt.Fprintf(w, "  %-12s %s\n", info.ID, info.Description)
		}
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output will be saved to output/<scene>/render_<timestamp>.png")
}

// createScene resolves a built-in id first, then a YAML scene
func createScene(sceneType string, overrides geometry.CameraConfig) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, fmt.Errorf("scene name cannot be empty")
	}

	s, err := scene.NewBuiltin(sceneType, overrides)
	if err == nil {
		return s, nil
	}
	if !errors.Is(err, scene.ErrUnknownScene) {
		return nil, err
	}

	path, ok := findSceneFile(sceneType)
	if !ok {
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
	return loaders.LoadSceneFile(path, overrides)
}

// findSceneFile maps yaml:<name>, a bare name, or a .yaml path to an
// existing file
func findSceneFile(sceneType string) (string, bool) {
	var candidates []string
	switch {
	case isYAMLPath(sceneType):
		candidates = []string{sceneType}
	default:
		name := strings.TrimPrefix(sceneType, scene.FileScenePrefix)
		for _, dir := range scene.SceneDirs {
			candidates = append(candidates,
				filepath.Join(dir, name+".yaml"),
				filepath.Join(dir, name+".yml"))
		}
	}

	for _, path := range candidates {
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path, true
		}
	}
	return "", false
}

func isYAMLPath(s string) bool {
	ext := strings.ToLower(filepath.Ext(s))
	return ext == ".yaml" || ext == ".yml"
}

// createOutputDir returns output/<scene>, using the file name for YAML scenes
func createOutputDir(sceneType string) string {
	name := strings.TrimPrefix(sceneType, scene.FileScenePrefix)
	if isYAMLPath(name) {
		name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	}
	if name == "" {
		name = "scene"
	}
	return filepath.Join("output", name)
}
