package main

import (
	"fmt"
	"image/png"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/pixelmoth/pathtracer/pkg/renderer"
	"github.com/pixelmoth/pathtracer/pkg/scene"
)

var opts struct {
	scene   string
	width   int
	height  int
	samples int
	depth   int
	seed    int64
	workers int
	format  string
	outDir  string
}

var rootCmd = &cobra.Command{
	Use:   "pathtracer",
	Short: "An offline path-tracing image renderer",
	Long: `pathtracer renders a built-in scene of spheres, cubes and cylinders by
stochastically sampling light-carrying rays, and writes the result as a PNG
or PPM image under the output directory.

Available scenes: ` + strings.Join(scene.Names(), ", "),
	RunE: run,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVar(&opts.scene, "scene", "allobjects-alt", "scene to render")
	flags.IntVar(&opts.width, "width", 600, "image width in pixels")
	flags.IntVar(&opts.height, "height", 400, "image height in pixels")
	flags.IntVar(&opts.samples, "samples", 200, "samples per pixel")
	flags.IntVar(&opts.depth, "depth", 50, "maximum ray bounce depth")
	flags.Int64Var(&opts.seed, "seed", 42, "base random seed")
	flags.IntVar(&opts.workers, "workers", 0, "concurrent row workers (0 = all CPUs)")
	flags.StringVar(&opts.format, "format", "png", "output format: png or ppm")
	flags.StringVar(&opts.outDir, "output", "output", "output directory")
}

func run(cmd *cobra.Command, args []string) error {
	if opts.width < 2 || opts.height < 2 {
		return fmt.Errorf("image must be at least 2x2, got %dx%d", opts.width, opts.height)
	}
	if opts.format != "png" && opts.format != "ppm" {
		return fmt.Errorf("unknown format %q (available: png, ppm)", opts.format)
	}

	logger := log.New(os.Stderr, "", log.LstdFlags)

	aspectRatio := float64(opts.width) / float64(opts.height)
	selectedScene, err := scene.New(opts.scene, aspectRatio)
	if err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selectedScene, opts.width, opts.height)
	raytracer.SetSamplingConfig(renderer.SamplingConfig{
		SamplesPerPixel: opts.samples,
		MaxDepth:        opts.depth,
		Seed:            opts.seed,
		Workers:         opts.workers,
	})
	raytracer.SetLogger(logger)

	logger.Printf("rendering scene %q at %dx%d, %d samples per pixel, depth %d",
		opts.scene, opts.width, opts.height, opts.samples, opts.depth)

	img, stats := raytracer.RenderPass()
	logger.Printf("render completed in %v using %d workers", stats.Elapsed, stats.Workers)

	outputDir := filepath.Join(opts.outDir, opts.scene)
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102_150405")
	filename := filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, opts.format))

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	switch opts.format {
	case "png":
		err = png.Encode(file, img)
	case "ppm":
		err = writePPM(file, img)
	}
	if err != nil {
		return fmt.Errorf("encoding %s: %w", opts.format, err)
	}

	logger.Printf("render saved as %s", filename)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
