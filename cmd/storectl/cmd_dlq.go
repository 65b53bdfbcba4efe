package main

import (
	"context"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/abdullah9786/nawab-products/internal/infra"
	"github.com/abdullah9786/nawab-products/internal/worker"

	"github.com/spf13/cobra"
)

var dlqLimit int64

// contactDLQCmd lists enquiries that could not be mailed
var contactDLQCmd = &cobra.Command{
	Use:   "contact-dlq",
	Short: "List contact enquiries in the dead letter queue",
	Long: `List the newest dead-lettered contact enquiries without removing them.

The request id matches the X-Request-ID logged for the original
POST /api/contact.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		rdb, err := infra.NewRedis(cfg.RedisURL)
		if err != nil {
			return fmt.Errorf("connect redis: %w", err)
		}
		defer rdb.Close()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		entries, err := worker.PeekDLQ(ctx, rdb, worker.QueueContact, dlqLimit)
		if err != nil {
			return err
		}
		return printDLQ(cmd, entries)
	},
}

func printDLQ(cmd *cobra.Command, entries []worker.DLQEntry) error {
	out := cmd.OutOrStdout()
	if len(entries) == 0 {
		fmt.Fprintln(out, "Dead letter queue is empty.")
		return nil
	}
	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "FAILED AT\tSENDER\tREQUEST ID\tATTEMPTS\tREASON")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%s\n",
			e.FailedAt.Format(time.RFC3339), dash(e.Sender), dash(e.RequestID), e.Attempts, e.Reason)
	}
	return w.Flush()
}

func dash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func init() {
	contactDLQCmd.Flags().Int64Var(&dlqLimit, "limit", 20, "Maximum entries to show")
}
