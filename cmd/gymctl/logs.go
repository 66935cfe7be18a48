package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/drafts"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/history"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/logs"
	"github.com/tutostrucoscode/GymMetrics/internal/gymstats/routines"

	"github.com/spf13/cobra"
)

func logsCmd() *cobra.Command {
	var (
		userID string
		day    string
	)

	cmd := &cobra.Command{
		Use:   "logs [routineId]",
		Short: "Print the log rows of a routine",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			opened, cfg, err := openStore(ctx)
			if err != nil {
				return err
			}
			defer opened.Close()

			historyRepo := history.NewRepo(opened.Store)
			service := logs.NewService(
				routines.NewService(routines.NewRepo(opened.Store)),
				historyRepo,
				// only edit touches drafts
				drafts.NewStore(drafts.NewMemoryCache(1), nil),
				logs.NewAggregator(historyRepo, cfg.WeekdayLocale, nil),
				nil,
			)

			view, err := service.Logs(ctx, userID, args[0], day)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "DAY\tEXERCISE\tDATE\tPERFORMED\tSETS\tMAX\tMIN\tID")
			for _, row := range view.Rows {
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%d\t%g\t%g\t%s\n",
					row.ScheduledDay, row.Name, row.PerformedDate, row.PerformedDay,
					row.Sets, row.MaxWeight, row.MinWeight, row.ID,
				)
			}
			return w.Flush()
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "owner of the routine")
	cmd.Flags().StringVar(&day, "day", logs.FilterAll, "scheduled day label, or all")
	_ = cmd.MarkFlagRequired("user")
	return cmd
}
