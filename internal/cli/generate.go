package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/go-playground/validator/v10"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/docstub-labs/docstub/internal/docgen"
	"github.com/docstub-labs/docstub/internal/goparser"
	"github.com/docstub-labs/docstub/internal/pyparser"
)

func newGenerateCommand() *cobra.Command {
	var config GenerateConfig

	cmd := &cobra.Command{
		Use:   "generate [flags] file...",
		Short: "Generate markdown documentation stubs for source files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return Generate(&config, args)
		},
	}

	cmd.Flags().StringVar(&config.OutputPath, "output", "-", "Path to output file or '-' for stdout")
	cmd.Flags().StringVar(&config.ConfigPath, "config", "", "Path to .docstub.yml config file")
	cmd.Flags().StringVar(&config.TodoMarker, "todo-marker", docgen.DefaultTodoMarker, "Substring marking a docstring line as a TODO (case-insensitive)")
	cmd.Flags().StringVar(&config.PropertyMarker, "property-marker", docgen.DefaultPropertyMarker, "Token promoting a method docstring into its class body (case-insensitive)")
	cmd.Flags().BoolVar(&config.KeepGoing, "keep-going", false, "Continue past unreadable or unparseable files")
	cmd.Flags().BoolVar(&config.Parallel, "parallel", false, "Process input files concurrently")
	cmd.Flags().BoolVar(&config.Verbose, "verbose", false, "Write diagnostics to stderr")

	return cmd
}

// GenerateConfig holds configuration for stub generation.
type GenerateConfig struct {
	OutputPath     string `validate:"required"`
	ConfigPath     string
	TodoMarker     string `validate:"required"`
	PropertyMarker string `validate:"required"`
	KeepGoing      bool
	Parallel       bool
	Verbose        bool
}

// Generate renders documentation for the given source files according to the
// provided configuration.
func Generate(config *GenerateConfig, paths []string) error {
	if err := loadConfigFile(config); err != nil {
		return err
	}
	if err := validator.New().Struct(config); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	driver := newDriver(config)
	out, err := driver.Generate(context.Background(), paths)
	if err != nil && !config.KeepGoing {
		return err
	}
	if werr := writeOutput(out, config.OutputPath); werr != nil {
		return werr
	}
	return err
}

func newDriver(config *GenerateConfig) *docgen.Driver {
	driver := docgen.NewDriver(docgen.NewExtractor(config.TodoMarker, config.PropertyMarker))
	driver.Register(".py", pyparser.New())
	driver.Register(".go", goparser.New())
	driver.KeepGoing = config.KeepGoing
	driver.Parallel = config.Parallel
	if config.Verbose {
		debug := color.New(color.FgCyan)
		driver.Debugf = func(format string, args ...any) {
			_, _ = debug.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return driver
}

func loadConfigFile(config *GenerateConfig) error {
	if config.ConfigPath == "" {
		return nil
	}

	data, err := os.ReadFile(filepath.Clean(config.ConfigPath))
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var cfg struct {
		Generate struct {
			Output         string `yaml:"output"`
			TodoMarker     string `yaml:"todo_marker"`
			PropertyMarker string `yaml:"property_marker"`
		} `yaml:"generate"`
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	// Apply config values if flags weren't set
	if config.OutputPath == "-" && cfg.Generate.Output != "" {
		config.OutputPath = cfg.Generate.Output
	}
	if config.TodoMarker == docgen.DefaultTodoMarker && cfg.Generate.TodoMarker != "" {
		config.TodoMarker = cfg.Generate.TodoMarker
	}
	if config.PropertyMarker == docgen.DefaultPropertyMarker && cfg.Generate.PropertyMarker != "" {
		config.PropertyMarker = cfg.Generate.PropertyMarker
	}

	return nil
}

func writeOutput(out, path string) error {
	if path == "-" {
		_, err := fmt.Fprint(os.Stdout, out)
		return err
	}
	f, err := os.Create(path) // #nosec G304
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()
	_, err = fmt.Fprint(f, out)
	return err
}
