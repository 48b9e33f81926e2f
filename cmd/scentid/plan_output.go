package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scentid/internal/report"
	"scentid/internal/resolver"
)

func printPlan(cmd *cobra.Command, plan *resolver.Plan, applied bool) {
	out := cmd.OutOrStdout()
	if len(plan.Entries) == 0 {
		fmt.Fprintln(out, "Nothing to do.")
		return
	}

	headers := []string{"Source", "Target", "Disposition", "Confidence", "Distance", "Detail"}
	rows := make([][]string, 0, len(plan.Entries))
	for _, entry := range plan.Entries {
		distance := ""
		if entry.Confidence != "" && !entry.ExactMatch {
			distance = strconv.Itoa(entry.Distance)
		}
		detail := entry.Reason
		if entry.ApplyError != "" {
			detail = "apply failed: " + entry.ApplyError
		}
		confidence := entry.Confidence
		if entry.ExactMatch {
			confidence = "EXACT"
		}
		rows = append(rows, []string{
			entry.Source, entry.Target, string(entry.Disposition), confidence, distance, detail,
		})
	}
	aligns := []columnAlignment{alignLeft, alignLeft, alignLeft, alignLeft, alignRight, alignLeft}
	fmt.Fprintln(out, renderTable(headers, rows, aligns))

	if applied {
		fmt.Fprintf(out, "%d proposed, %d applied, %d failed, %d skipped\n",
			plan.Proposed(), plan.Applied(), plan.Failed(), plan.Skipped())
		return
	}
	fmt.Fprintf(out, "%d proposed, %d skipped (dry run; pass --apply to rename)\n",
		plan.Proposed(), plan.Skipped())
}

// writeReport persists a batch report and prints its location.
func writeReport(cmd *cobra.Command, ctx *commandContext, mode string, plan *resolver.Plan) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	path, err := report.FromPlan(mode, plan).WriteFile(cfg.Paths.ReportDir)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", path)
	return nil
}
