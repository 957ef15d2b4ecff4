package main

import (
	"errors"
	"fmt"
	"os"

	cfgpkg "github.com/n1000/hogdump/internal/config"
	"github.com/n1000/hogdump/internal/dump"
	"github.com/n1000/hogdump/internal/hog"
	logpkg "github.com/n1000/hogdump/pkg/log"
	"github.com/spf13/cobra"
)

func main() {
	var (
		extract    bool
		createOut  string
		overwrite  bool
		verbose    bool
		filterExpr string
		configPath string
		logLevel   string
		logFormat  string
	)

	rootCmd := &cobra.Command{
		Use:   "hog [flags] FILE...",
		Short: "HOG file dump utility",
		Long:  "hog lists, extracts and creates Descent 1 HOG archive files.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if extract && createOut != "" {
				return errors.New("--extract and --create are mutually exclusive operations")
			}

			if configPath == "" {
				configPath = cfgpkg.DefaultPath()
			}
			cfg, err := cfgpkg.Load(configPath)
			if err != nil {
				return err
			}
			cfgpkg.FromEnv(&cfg)
			if logLevel != "" {
				cfg.LogLevel = logLevel
			}
			if logFormat != "" {
				cfg.LogFormat = logFormat
			}
			if overwrite {
				cfg.Overwrite = true
			}

			logger, err := logpkg.ApplyConfig(&logpkg.Config{Level: cfg.LogLevel, Format: cfg.LogFormat})
			if err != nil {
				return err
			}

			cmd.SilenceUsage = true
			switch {
			case extract:
				extractArchives(logger, args, cfg, filterExpr)
			case createOut != "":
				return createArchive(logger, createOut, args, cfg)
			default:
				listArchives(logger, args, filterExpr, verbose)
			}
			return nil
		},
	}

	rootCmd.Flags().BoolVarP(&extract, "extract", "x", false, "Extract the contents of the provided hog file(s)")
	rootCmd.Flags().StringVarP(&createOut, "create", "c", "", "Create hog file out of the provided file(s)")
	rootCmd.Flags().BoolVarP(&overwrite, "overwrite", "o", false, "Overwrite files")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Display more information during processing")
	rootCmd.Flags().StringVar(&filterExpr, "filter", "", "CEL expression selecting records, e.g. 'size > 1024 && name.endsWith(\".BBM\")'")
	rootCmd.Flags().StringVar(&configPath, "config", "", "Config file (default: user hog config if present)")
	rootCmd.Flags().StringVar(&logLevel, "log-level", os.Getenv("HOG_LOG_LEVEL"), "Log level: debug|info|warn|error")
	rootCmd.Flags().StringVar(&logFormat, "log-format", os.Getenv("HOG_LOG_FORMAT"), "Log format: text|json (default text)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// extractArchives dumps each archive in turn. One archive's fatal error is
// reported and the batch continues with the next archive.
func extractArchives(logger logpkg.Logger, paths []string, cfg cfgpkg.Config, filter string) {
	for _, path := range paths {
		opts := dump.ExtractOptions{
			Overwrite:      cfg.Overwrite,
			Filter:         filter,
			CopyBufferSize: cfg.CopyBufferSize,
			OnEvent: func(ev dump.Event) {
				switch ev.Outcome {
				case dump.OutcomeExtracted:
					fmt.Printf("  %s: %s: wrote %d bytes\n", path, ev.Record.Name, ev.Bytes)
				case dump.OutcomeSkipped:
					fmt.Printf("  %s: %s: skipping (already exists)\n", path, ev.Record.Name)
				case dump.OutcomeFailed:
					logger.Error("failed to extract record",
						logpkg.Str("archive", path),
						logpkg.Str("name", ev.Record.Name),
						logpkg.Err(ev.Err))
				}
			},
		}
		sum, err := dump.Extract(path, opts)
		if err != nil {
			logger.Error("error while processing HOG file",
				logpkg.Str("archive", path), logpkg.Err(err))
			continue
		}
		fmt.Printf("Processed %d files, extracted %d files (%d bytes), skipped %d files.\n",
			sum.Processed, sum.Extracted, sum.BytesExtracted, sum.Skipped)
	}
}

// listArchives prints a per-archive content summary, with per-record
// lines when verbose.
func listArchives(logger logpkg.Logger, paths []string, filter string, verbose bool) {
	for _, path := range paths {
		opts := dump.ListOptions{Filter: filter}
		if verbose {
			opts.OnRecord = func(rec hog.Record) {
				fmt.Printf("  %s: %s: %d bytes\n", path, rec.Name, rec.Length)
			}
		}
		sum, err := dump.List(path, opts)
		if err != nil {
			logger.Error("error while processing HOG file",
				logpkg.Str("archive", path), logpkg.Err(err))
			continue
		}
		fmt.Printf("%s: contains %d files (%d bytes).\n", path, sum.Files, sum.Bytes)
	}
}

// createArchive builds one archive from the input files. Creating the
// archive itself is fatal; per-input append errors are reported and the
// batch continues.
func createArchive(logger logpkg.Logger, out string, inputs []string, cfg cfgpkg.Config) error {
	opts := dump.CreateOptions{
		CopyBufferSize: cfg.CopyBufferSize,
		OnFile: func(path string, bytes int64, err error) {
			if err != nil {
				logger.Error("error occurred while appending to HOG file",
					logpkg.Str("input", path), logpkg.Str("archive", out), logpkg.Err(err))
				return
			}
			fmt.Printf("%s: added file %q (%d bytes).\n", out, path, bytes)
		},
	}
	sum, err := dump.Create(out, inputs, opts)
	if err != nil {
		logger.Error("error creating output HOG file",
			logpkg.Str("archive", out), logpkg.Err(err))
		return err
	}
	fmt.Printf("%s: added %d files (%d bytes), %d failed.\n", out, sum.Added, sum.BytesWritten, sum.Failed)
	return nil
}
