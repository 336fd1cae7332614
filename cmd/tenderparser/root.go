package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/LouYuanbo1/tenderparser/internal/config"
	"github.com/LouYuanbo1/tenderparser/internal/infra/crawler"
	runlog "github.com/LouYuanbo1/tenderparser/internal/log"
	"github.com/LouYuanbo1/tenderparser/internal/service/export"
	"github.com/LouYuanbo1/tenderparser/internal/service/harvest"
	"github.com/LouYuanbo1/tenderparser/internal/service/session"
	"github.com/LouYuanbo1/tenderparser/param"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	max        int
	output     string
	configPath string
	engine     string
	logFile    string
	verbose    bool
}

// NewRootCmd creates the tenderparser command.
func NewRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "tenderparser",
		Short: "Collect tender listings from rostender.info",
		Long: `tenderparser pages through the rostender.info search listing with a headless
browser, extracts tender cards and writes them to a single output.

The output format is chosen by --output:
  *.csv                     UTF-8 CSV with BOM
  *.db                      SQLite database, table "tenders"
  es://host:port/index      Elasticsearch (ess:// for https)`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}

	f := cmd.Flags()
	f.IntVar(&opts.max, "max", 100, "Maximum number of tenders to collect")
	f.StringVarP(&opts.output, "output", "o", "", "Output file (.csv, .db) or es://host:port/index")
	f.StringVarP(&opts.configPath, "config", "c", "", "Optional YAML or JSON configuration file")
	f.StringVar(&opts.engine, "engine", "", "Browser engine: rod, chromedp or static")
	f.StringVar(&opts.logFile, "log-file", "tender_parser.log", "Run log file")
	f.BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")
	_ = cmd.MarkFlagRequired("output")

	return cmd
}

// Execute runs the root command and returns the process exit code.
func Execute(ctx context.Context) int {
	if err := NewRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

func loadConfig(cmd *cobra.Command, opts *rootOptions) (*config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return nil, err
	}

	flags := &config.Config{}
	flags.Browser.Engine = opts.engine
	flags.Log.Verbose = opts.verbose
	if cmd.Flags().Changed("log-file") {
		flags.Log.File = opts.logFile
	}
	if err := cfg.Override(flags); err != nil {
		return nil, fmt.Errorf("failed to apply flags: %w", err)
	}
	// 0是合法值, 不能交给mergo合并
	if cmd.Flags().Changed("max") {
		cfg.Harvest.MaxTenders = opts.max
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.ResolvePaths(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func run(cmd *cobra.Command, opts *rootOptions) error {
	if err := export.Validate(opts.output); err != nil {
		return err
	}
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	logFile, err := runlog.OpenFile(cfg.Log.File)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer logFile.Close()
	logger := runlog.New(logFile, cmd.ErrOrStderr(), cfg.Log.Verbose)

	writer, err := export.Select(opts.output, cfg, logger)
	if err != nil {
		return err
	}
	launch, err := crawler.NewLauncher(cfg)
	if err != nil {
		return err
	}

	manager := session.InitManager(launch, param.SessionFromConfig(cfg), logger)
	harvester := harvest.InitHarvester(manager, param.HarvestFromConfig(cfg), logger)

	ctx := cmd.Context()
	res, runErr := harvester.Run(ctx)
	if runErr != nil {
		logger.Error("harvest ended early", "error", runErr)
	}

	// 中断后仍然写出已采集的记录
	exportErr := export.Export(context.WithoutCancel(ctx), writer, res.Records)
	if errors.Is(exportErr, export.ErrNoRecords) {
		fmt.Fprintln(cmd.OutOrStdout(), "no tender data collected, nothing written")
		exportErr = nil
	}

	printSummary(cmd.OutOrStdout(), res, writer.Target())
	return errors.Join(runErr, exportErr)
}

func printSummary(w io.Writer, res *harvest.Result, target string) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.AppendRows([]table.Row{
		{"Pages", res.Pages},
		{"Records", len(res.Records)},
		{"Restarts", res.Restarts},
		{"Stop reason", string(res.Stop)},
		{"Elapsed", res.Elapsed.Round(time.Second).String()},
		{"Output", target},
	})
	t.SetStyle(table.StyleRounded)
	t.Render()
}
