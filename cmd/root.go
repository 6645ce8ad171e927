package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/naukma-schedule/app"
	"github.com/kilianp07/naukma-schedule/config"
	"github.com/kilianp07/naukma-schedule/core/ingest"
	"github.com/kilianp07/naukma-schedule/infra/export"
	"github.com/kilianp07/naukma-schedule/infra/logger"
)

type options struct {
	cfgPath string
	files   []string
	output  string
	format  string
}

// NewRootCmd builds the naukma-schedule command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "naukma-schedule [files...]",
		Short: "Parse NaUKMA timetable workbooks into a validated schedule",
		Long: "Reads faculty timetables named <Faculty>.xlsx or <Faculty>.<Speciality>.xlsx,\n" +
			"validates every lesson and exports the merged schedule.\n" +
			"Output formats: " + strings.Join(export.Formats(), ", ") + ".",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts, args)
		},
	}
	root.PersistentFlags().StringVarP(&opts.cfgPath, "config", "c", "", "configuration file (yaml or json)")
	root.PersistentFlags().StringSliceVarP(&opts.files, "files", "f", nil, "schedule workbooks to parse")
	root.Flags().StringVarP(&opts.output, "output", "o", "", "output path, - for stdout")
	root.Flags().StringVar(&opts.format, "format", "", "output format")
	root.AddCommand(newCheckCmd(opts))
	return root
}

// Execute runs the CLI.
func Execute() error { return NewRootCmd().Execute() }

func run(cmd *cobra.Command, opts *options, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	files, err := opts.inputs(args)
	if err != nil {
		return err
	}
	cfg, err := config.Load(opts.cfgPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	opts.apply(cmd, cfg)

	svc, err := app.New(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := svc.Close(); err != nil {
			logger.New("main").Errorf("service close: %v", err)
		}
	}()
	res, err := svc.Run(ctx, files)
	if err != nil {
		return err
	}
	return report(cmd.ErrOrStderr(), res)
}

func (o *options) inputs(args []string) ([]string, error) {
	files := append(append([]string{}, o.files...), args...)
	if len(files) == 0 {
		return nil, fmt.Errorf("no schedule files given, use --files")
	}
	return files, nil
}

// apply lets flags override the configuration file.
func (o *options) apply(cmd *cobra.Command, cfg *config.Config) {
	if cmd.Flags().Changed("format") {
		cfg.Output.Type = o.format
		if cfg.Output.Path == config.DefaultOutputPath && o.format != export.DefaultFormat {
			cfg.Output.Path = strings.TrimSuffix(config.DefaultOutputPath, ".json") + "." + o.format
		}
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.Path = o.output
	}
}

// report prints failed files and turns them into a non-zero exit.
func report(w io.Writer, res *ingest.Result) error {
	for _, f := range res.Failures {
		fmt.Fprintf(w, "FAILED %v\n", f)
	}
	if len(res.Failures) > 0 {
		return fmt.Errorf("%d of %d files failed", len(res.Failures), res.Files)
	}
	return nil
}
