package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/kilianp07/naukma-schedule/app"
	"github.com/kilianp07/naukma-schedule/config"
	"github.com/kilianp07/naukma-schedule/infra/logger"
)

func newCheckCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "check [files...]",
		Short: "Validate schedule workbooks without writing output",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			svc, err := app.New(cfg)
			if err != nil {
				return err
			}
			defer func() {
				if err := svc.Close(); err != nil {
					logger.New("main").Errorf("service close: %v", err)
				}
			}()
			res, err := svc.Check(ctx, files)
			if err != nil {
				return err
			}
			st := res.Schedule.Stats()
			fmt.Fprintf(cmd.OutOrStdout(), "%d files, %d faculties, %d specialities, %d disciplines, %d groups\n",
				res.Files, st.Faculties, st.Specialities, st.Disciplines, st.Groups)
			return report(cmd.ErrOrStderr(), res)
		},
	}
}
