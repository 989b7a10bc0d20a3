// Command attrgen scans Go packages for structs marked with //+attrgen
// and generates the attribute schemas and parsing glue next to them.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/scott-cotton/cli"

	"attrgen/internal/analyze"
	"attrgen/internal/common"
	"attrgen/internal/config"
	"attrgen/internal/diagnostic"
	"attrgen/internal/gen"
	"attrgen/token"
)

func main() {
	cli.MainContext(context.Background(), MainCommand())
}

func MainCommand() *cli.Command {
	cfg := &Config{}
	sOpts, err := cli.StructOpts(cfg)
	if err != nil {
		panic(err)
	}

	return cli.NewCommand("attrgen").
		WithSynopsis("attrgen [opts] [packages...]").
		WithDescription("Generate attribute argument parsers for structs marked with //+attrgen markers. Package patterns given as arguments override the configured ones.").
		WithOpts(sOpts...).
		WithRun(func(cc *cli.Context, args []string) error {
			return run(cfg, cc, args)
		})
}

type Config struct {
	ConfigFile string `cli:"name=config desc='config file path (default: attrgen.yaml if present)'"`
	Suffix     string `cli:"name=suffix desc='generated file suffix, replaces the .go of each source file (overrides config)'"`
	DryRun     bool   `cli:"name=dry-run desc='report what would be generated without writing files'"`
	Verbose    bool   `cli:"name=v desc='list written files'"`
}

func run(cfg *Config, cc *cli.Context, args []string) error {
	file, err := loadConfig(cfg.ConfigFile)
	if err != nil {
		return err
	}

	if cfg.Suffix != "" {
		file.Output.Suffix = cfg.Suffix
	}

	patterns := []string(file.Packages)
	if len(args) > 0 {
		patterns = args
	}
	if common.IsEmpty(patterns) {
		return fmt.Errorf("%w: no package patterns to scan", cli.ErrUsage)
	}

	analyzer := analyze.NewAnalyzer()
	schemas, err := analyzer.LoadPackages(patterns...)
	if err != nil {
		return err
	}
	file.ApplyOverrides(schemas)

	diags := analyzer.Diagnostics()
	if common.IsEmpty(schemas) && !diags.HasErrors() {
		diags.AddInfo(diagnostic.CodeNoSchemas,
			fmt.Sprintf("no marked structs found in %v", patterns), "", "", token.Pos{})
	}
	diagnostic.Fprint(os.Stderr, diags)
	if diags.HasErrors() {
		return diags.Error()
	}

	generator := gen.NewGenerator(gen.Config{Suffix: file.Output.Suffix})
	files, err := generator.Generate(schemas)
	if err != nil {
		return err
	}

	if cfg.DryRun {
		for _, f := range files {
			fmt.Printf("would write %s (%d bytes)\n", filepath.Join(f.Dir, f.Filename), len(f.Content))
		}
		return nil
	}

	if err := gen.WriteFiles(files); err != nil {
		return err
	}
	if cfg.Verbose {
		for _, f := range files {
			fmt.Printf("wrote %s\n", filepath.Join(f.Dir, f.Filename))
		}
	}

	return nil
}

// loadConfig loads the named config file, or attrgen.yaml from the
// working directory when none is named, or built-in defaults when that
// does not exist either.
func loadConfig(path string) (*config.File, error) {
	if path != "" {
		return config.LoadFile(path)
	}

	file, err := config.LoadFile(config.DefaultFilename)
	if errors.Is(err, os.ErrNotExist) {
		return config.Default(), nil
	}
	return file, err
}
