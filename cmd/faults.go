package cmd

import (
	"context"
	"fmt"
	"log"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/kasuboski/dvrdispatch/pkg/logger"
	"github.com/kasuboski/dvrdispatch/pkg/manager"
	"github.com/kasuboski/dvrdispatch/pkg/pagination"
	"github.com/kasuboski/dvrdispatch/pkg/storage"
	"github.com/spf13/cobra"
)

var (
	faultState    string
	faultPage     int
	faultPageSize int
)

// faultsCmd represents the faults command
var faultsCmd = &cobra.Command{
	Use:   "faults",
	Short: "inspect and retry the fault queue",
	Long:  `inspect and retry requests that failed to dispatch`,
}

var listFaultsCmd = &cobra.Command{
	Use:   "list",
	Short: "list fault queue entries",
	Long:  `list fault queue entries, optionally only those that are failed or completed`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := logger.WithCtx(context.Background(), logger.Get())

		err := withApp(ctx, readOnly, func(a *app) error {
			params := pagination.Params{Page: faultPage, PageSize: faultPageSize}
			page, err := a.manager.ListFaults(ctx, storage.FaultState(faultState), params)
			if err != nil {
				return fmt.Errorf("failed to list faults: %w", err)
			}

			out := cmd.OutOrStdout()
			terminal := isTerminal(out)
			fmt.Fprintln(out, renderFaults(page.Faults, terminal))
			if terminal && page.Meta.TotalPages > 1 {
				fmt.Fprintf(out, "page %d of %d (%d entries)\n", page.Meta.Page, page.Meta.TotalPages, page.Meta.TotalItems)
			}
			return nil
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

var retryFaultsCmd = &cobra.Command{
	Use:   "retry [request id]",
	Short: "retry failed requests",
	Long:  `retry every failed request, or only the one with the given request id`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		ctx := logger.WithCtx(context.Background(), logger.Get())

		var requestID int64
		if len(args) == 1 {
			id, err := strconv.ParseInt(args[0], 10, 64)
			if err != nil {
				log.Fatalf("invalid request id %q: %v", args[0], err)
			}
			requestID = id
		}

		err := withApp(ctx, writer, func(a *app) error {
			if len(args) == 1 {
				result, err := a.manager.RetryFault(ctx, requestID)
				if err != nil {
					return fmt.Errorf("failed to retry request %d: %w", requestID, err)
				}
				return printJSON(cmd, result)
			}

			results, err := a.manager.RetryFaults(ctx)
			if err != nil {
				return fmt.Errorf("failed to retry faults: %w", err)
			}
			return printJSON(cmd, results)
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

var faultStatsCmd = &cobra.Command{
	Use:   "stats",
	Short: "count fault queue entries per state",
	Run: func(cmd *cobra.Command, args []string) {
		ctx := logger.WithCtx(context.Background(), logger.Get())

		err := withApp(ctx, readOnly, func(a *app) error {
			stats, err := a.manager.FaultStats(ctx)
			if err != nil {
				return fmt.Errorf("failed to get fault stats: %w", err)
			}
			return printJSON(cmd, stats)
		})
		if err != nil {
			log.Fatal(err)
		}
	},
}

func renderFaults(faults []manager.Fault, terminal bool) string {
	headers := []string{"Request", "State", "Retries", "Show", "Error", "Created", "Completed"}
	aligns := []columnAlignment{alignRight, alignLeft, alignRight}

	rows := make([][]string, 0, len(faults))
	for _, f := range faults {
		show := ""
		if f.Request != nil {
			show = f.Request.Show.Title
		}

		completed := ""
		if f.Completed != nil {
			completed = humanize.Time(*f.Completed)
		}

		rows = append(rows, []string{
			strconv.FormatInt(f.RequestID, 10),
			f.State,
			strconv.Itoa(int(f.RetryCount)),
			show,
			f.Error,
			humanize.Time(f.Created),
			completed,
		})
	}

	return renderTable(headers, rows, aligns, terminal)
}

func init() {
	listFaultsCmd.Flags().StringVar(&faultState, "state", "", "only list entries in this state (failed, completed)")
	listFaultsCmd.Flags().IntVar(&faultPage, "page", 1, "page to list")
	listFaultsCmd.Flags().IntVar(&faultPageSize, "page-size", 0, "entries per page, 0 lists everything")

	faultsCmd.AddCommand(listFaultsCmd)
	faultsCmd.AddCommand(retryFaultsCmd)
	faultsCmd.AddCommand(faultStatsCmd)
	rootCmd.AddCommand(faultsCmd)
}
