package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/df07/go-pathtracer/pkg/core"
	"github.com/df07/go-pathtracer/pkg/loaders"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
)

// errHelp signals that usage was printed and nothing should be rendered
var errHelp = errors.New("help requested")

// options holds the parsed command line. Zero-valued overrides keep the scene default.
type options struct {
	sceneName   string
	output      string
	texturePath string
	seed        int64

	width   int
	samples int
	depth   int
	workers int

	// set records which flags were given explicitly
	set map[string]bool
}

func main() {
	logger := renderer.NewDefaultLogger()
	registry := scene.DefaultRegistry()

	opts, err := parseFlags(os.Args[1:], registry, os.Stdout)
	if errors.Is(err, errHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if err := run(opts, registry, logger); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseFlags parses args into options, printing usage to out when -help is given
func parseFlags(args []string, registry *scene.Registry, out io.Writer) (options, error) {
	fs := flag.NewFlagSet("pathtracer", flag.ContinueOnError)
	fs.SetOutput(out)

	var opts options
	fs.StringVar(&opts.sceneName, "scene", "two-spheres", "Scene to render (see -help for the list)")
	fs.IntVar(&opts.width, "width", 0, "Image width in pixels; height follows the scene's aspect ratio")
	fs.IntVar(&opts.samples, "samples", 0, "Samples per pixel")
	fs.IntVar(&opts.depth, "depth", 0, "Maximum ray bounce depth")
	fs.IntVar(&opts.workers, "workers", 0, "Number of render workers (0 = one per CPU)")
	fs.Int64Var(&opts.seed, "seed", scene.DefaultOptions().Seed, "Random seed for scene layout and sampling")
	fs.StringVar(&opts.output, "output", "", "Output image (.png or .jpg); default output/<scene>/render_<timestamp>.png")
	fs.StringVar(&opts.texturePath, "texture", "", "Image used by the earth and final scenes")
	help := fs.Bool("help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return options{}, errHelp
		}
		return options{}, err
	}

	if *help {
		fmt.Fprintln(out, "Path Tracer")
		fmt.Fprintln(out, "Usage: pathtracer [options]")
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Options:")
		fs.PrintDefaults()
		fmt.Fprintln(out)
		fmt.Fprintln(out, "Available scenes:")
		for _, info := range registry.List() {
			fmt.Fprintf(out, "  %-15s %s\n", info.ID, info.Description)
		}
		return options{}, errHelp
	}

	opts.set = make(map[string]bool)
	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts, nil
}

// applyOverrides copies explicitly set flags over the scene defaults
func applyOverrides(s *scene.Scene, opts options) renderer.SamplingConfig {
	if opts.set["width"] {
		s.SetWidth(opts.width)
	}

	config := s.SamplingConfig
	if opts.set["samples"] {
		config.SamplesPerPixel = opts.samples
	}
	if opts.set["depth"] {
		config.MaxDepth = opts.depth
	}
	if opts.set["workers"] {
		config.NumWorkers = opts.workers
	}
	config.Seed = opts.seed
	return config
}

// outputPath returns the requested output file or a timestamped default
func outputPath(opts options, now time.Time) string {
	if opts.output != "" {
		return opts.output
	}
	timestamp := now.Format("20060102_150405")
	return filepath.Join("output", opts.sceneName, fmt.Sprintf("render_%s.png", timestamp))
}

// run builds the scene, renders it and saves the image
func run(opts options, registry *scene.Registry, logger core.Logger) error {
	logger.Printf("Starting path tracer...\n")

	buildStart := time.Now()
	selected, err := registry.Create(opts.sceneName, scene.Options{
		Seed:        opts.seed,
		TexturePath: opts.texturePath,
	})
	if err != nil {
		return err
	}
	logger.Printf("Using %s scene (built in %v)\n", selected.Name, time.Since(buildStart))

	if stats, ok := selected.BVHStats(); ok {
		logger.Printf("BVH: %d nodes, %d leaves, max depth %d\n", stats.TotalNodes, stats.LeafCount, stats.MaxDepth)
	}

	config := applyOverrides(selected, opts)
	if err := config.Validate(); err != nil {
		return err
	}

	raytracer := renderer.NewRaytracer(selected, config, logger)
	frame, stats, err := raytracer.Render()
	if err != nil {
		return err
	}

	logger.Printf("Throughput: %.0f samples/sec across %d workers\n",
		stats.SamplesPerSecond(), stats.Workers)

	filename := outputPath(opts, time.Now())
	if err := loaders.SaveImage(filename, frame.Image()); err != nil {
		return err
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}
