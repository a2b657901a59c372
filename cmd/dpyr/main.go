// Command dpyr runs dpyr pipelines described in YAML and previews delimited files
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/go-sif/dpyr"
	"github.com/go-sif/dpyr/datasource/dsv"
	"github.com/go-sif/dpyr/display"
	"github.com/go-sif/dpyr/engine/duckdb"
	"github.com/go-sif/dpyr/logging"
	"github.com/go-sif/dpyr/operations/transform"
	"github.com/go-sif/dpyr/operations/util"
	"github.com/go-sif/dpyr/pipeline"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var version = "0.1.0"

// session is the state shared by every command: its configuration, logger,
// engine and displayer
type session struct {
	config    *Config
	logger    *zap.Logger
	engine    *duckdb.Engine
	displayer dpyr.Displayer
}

func openSession(cmd *cobra.Command, configFile string) (*session, error) {
	cfg, err := loadConfig(cmd.Flags(), configFile)
	if err != nil {
		return nil, err
	}
	level, err := logging.LogLevelFromString(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(level, cfg.LogEncoding)
	if err != nil {
		return nil, err
	}
	displayer, err := display.New(cfg.Format, cmd.OutOrStdout())
	if err != nil {
		return nil, err
	}
	eng, err := duckdb.Open(&duckdb.Options{
		Path:        cfg.DB,
		Threads:     cfg.Threads,
		MemoryLimit: cfg.MemoryLimit,
		Logger:      logger,
	})
	if err != nil {
		return nil, err
	}
	return &session{config: cfg, logger: logger, engine: eng, displayer: displayer}, nil
}

func (s *session) close() {
	if err := s.engine.Close(); err != nil {
		s.logger.Warn("failed to close engine", zap.Error(err))
	}
	_ = s.logger.Sync()
}

// show collects a DataFrame and displays it
func (s *session) show(label string, df dpyr.DataFrame) error {
	records, err := df.Collect()
	if err != nil {
		return err
	}
	return s.displayer.Display(label, records)
}

func newRootCommand() *cobra.Command {
	var configFile string
	root := &cobra.Command{
		Use:           "dpyr",
		Short:         "dpyr - dplyr-style pipelines over DuckDB",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	flags := root.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "Path to a YAML, JSON or TOML config file")
	flags.String("log-level", "warn", "Log level (trace, debug, info, warn, error, fatal)")
	flags.String("log-encoding", "console", "Log encoding (console, json)")
	flags.String("format", "table", "Output format (table, csv, json)")
	flags.Int("rows", util.DefaultPreviewRows, "Number of rows shown by preview")
	flags.String("db", "", "DuckDB database file. Defaults to an in-memory database")
	flags.Int("threads", 0, "Number of DuckDB threads. Defaults to DuckDB's own default")
	flags.String("memory-limit", "", "DuckDB memory limit, such as 2GB")

	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dpyr v%s\n", version)
			fmt.Fprintf(cmd.OutOrStdout(), "Go version: %s\n", runtime.Version())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "run <pipeline.yaml>",
		Short: "Run a pipeline and print its result",
		Long: `Run a pipeline described in YAML and print its result.

Example pipeline:
  source:
    path: orders.csv
  steps:
    - filter: "qty > 2"
    - arrange: [-qty]
    - head: 10`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, configFile)
			if err != nil {
				return err
			}
			defer s.close()
			def, err := pipeline.Load(args[0])
			if err != nil {
				return err
			}
			s.logger.Info("running pipeline", zap.String("path", args[0]), zap.Int("steps", len(def.Steps)))
			result, err := pipeline.Run(s.engine, def, s.displayer)
			if err != nil {
				return err
			}
			if rs := s.engine.LastRunStatistics(); rs != nil {
				s.logger.Info("pipeline finished",
					zap.Int("steps", rs.GetNumSteps()),
					zap.Durations("step_runtimes", rs.GetStepRuntimes()),
					zap.Duration("runtime", rs.GetRuntime()))
			}
			return s.show("", result)
		},
	})

	var delimiter string
	previewCmd := &cobra.Command{
		Use:   "preview <file.csv>",
		Short: "Show the first rows of delimited files",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := openSession(cmd, configFile)
			if err != nil {
				return err
			}
			defer s.close()
			conf, err := (&pipeline.Source{Delimiter: delimiter}).ParserConf()
			if err != nil {
				return err
			}
			df, err := dsv.CreateDataFrame(s.engine, args[0], conf)
			if err != nil {
				return err
			}
			rows := s.config.Rows
			if rows <= 0 {
				rows = util.DefaultPreviewRows
			}
			head, err := df.To(transform.Head(rows))
			if err != nil {
				return err
			}
			return s.show(args[0], head)
		},
	}
	previewCmd.Flags().StringVar(&delimiter, "delimiter", ",", "Delimiter separating columns")
	root.AddCommand(previewCmd)

	return root
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
