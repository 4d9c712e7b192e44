package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"os"

	"github.com/alecthomas/kong"
	"github.com/dustin/go-humanize"

	"github.com/randomouscrap98/binfixture/fixture"
)

const (
	AppVersion = "1.0.0"
)

// Swapped out in tests so the full size presets don't have to be written
var resolveCount = fixture.ResolveCount

type GenerateCmd struct {
	Size     string           `required:"" placeholder:"SIZE" help:"Size preset: SMALL (512MiB), MEDIUM (1GiB) or LARGE (2GiB)"`
	Output   string           `required:"" placeholder:"PATH" help:"Output file (.bin is appended if missing)"`
	Seed     uint64           `placeholder:"N" help:"Fixed seed for reproducible output (default: random)"`
	Manifest string           `placeholder:"PATH" help:"Also write a toml manifest describing the file"`
	Json     bool             `help:"Print the result as json"`
	Progress bool             `help:"Log progress while writing"`
	Version  kong.VersionFlag `help:"Show version information"`
}

func (c *GenerateCmd) Validate() error {
	if c.Size == "" || c.Output == "" {
		return errors.New("missing parameters")
	}
	return nil
}

// Whether the given flag showed up on the command line at all
func flagSet(kctx *kong.Context, name string) bool {
	for _, p := range kctx.Path {
		if p.Flag != nil && p.Flag.Name == name {
			return true
		}
	}
	return false
}

func (c *GenerateCmd) Run(kctx *kong.Context, stdout io.Writer, logger *log.Logger) error {
	// Size comes first: an unknown preset must never touch the filesystem
	count, err := resolveCount(c.Size)
	if err != nil {
		reportErr(logger, c.Size, "resolve size", err)
		return err
	}
	path := fixture.NormalizeOutputPath(c.Output)

	g := fixture.NewGenerator(path, count)
	g.Hash = c.Manifest != "" || c.Json
	if flagSet(kctx, "seed") {
		g.Seed = &c.Seed
	}
	if c.Progress {
		g.Progress = progressLogger(logger, path)
	}

	logger.Printf("Generating %d integers (%s) into %s\n", count, humanize.IBytes(count*fixture.IntSize), path)
	result, err := g.WriteFile()
	if err != nil {
		reportErr(logger, path, "generate file", err)
		return err
	}

	if c.Manifest != "" {
		err = fixture.WriteManifest(c.Manifest, fixture.NewManifest(c.Size, result))
		if err != nil {
			reportErr(logger, c.Manifest, "write manifest", err)
			return err
		}
		logger.Printf("Wrote manifest %s\n", c.Manifest)
	}

	if c.Json {
		err = PrintJson(stdout, result)
	} else {
		_, err = fmt.Fprintf(stdout, "Binary file generated: %s (%s, %d integers)\n",
			result.Path, humanize.IBytes(result.Bytes), result.Count)
	}
	if err != nil {
		reportErr(logger, path, "print result", err)
	}
	return err
}

// Parse and run one generation. Returns the process exit code.
func run(args []string, stdout io.Writer, stderr io.Writer, exit func(int)) int {
	logger := log.New(stderr, "", log.LstdFlags)
	// Help and version end the run through kong's exit hook. Remember that
	// happened, since the hook doesn't necessarily stop the process.
	exitCode := -1
	var cli GenerateCmd
	parser, err := kong.New(&cli,
		kong.Name("generator"),
		kong.Description("Write a binary file full of random 32 bit integers, sized by preset"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(code int) {
			if exitCode < 0 {
				exitCode = code
			}
			exit(code)
		}),
		kong.Vars{
			"version": AppVersion,
		},
		kong.BindTo(stdout, (*io.Writer)(nil)),
		kong.Bind(logger),
	)
	if err != nil {
		fmt.Fprintf(stderr, "generator: %s\n", err)
		return 1
	}
	ctx, err := parser.Parse(normalizeArgs(args))
	if exitCode >= 0 {
		return exitCode
	}
	if err == nil {
		err = cli.Validate()
	}
	if err != nil {
		fmt.Fprintf(stderr, "generator: error: %s\n", err)
		printUsage(stderr)
		return 1
	}
	// Run reports its own failures
	if err := ctx.Run(); err != nil {
		return 1
	}
	return 0
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, os.Exit))
}
