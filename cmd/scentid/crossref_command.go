package main

import (
	"github.com/spf13/cobra"

	"scentid/internal/resolver"
)

func newCrossrefCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var exactOnly bool
	var threshold int
	var apply bool
	var jsonOut bool
	var noReport bool

	cmd := &cobra.Command{
		Use:   "crossref",
		Short: "Match numbered exports against descriptively named images",
		Long: "Cross-references every numbered export in the image directory against the " +
			"descriptively named images: byte-identical duplicates first, then a perceptual " +
			"pass. Without --apply the plan is only printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			dir, err := ctx.imagesDir(dirFlag)
			if err != nil {
				return err
			}
			r, err := ctx.newResolver()
			if err != nil {
				return err
			}

			plan, err := r.Crossref(cmd.Context(), dir, resolver.CrossrefOptions{
				ExactOnly: exactOnly,
				Threshold: threshold,
			})
			if err != nil {
				return err
			}
			if apply {
				if err := r.Apply(cmd.Context(), plan); err != nil {
					return err
				}
			}

			if jsonOut {
				if err := writeJSON(cmd, plan); err != nil {
					return err
				}
			} else {
				printPlan(cmd, plan, apply)
			}
			if noReport || len(plan.Entries) == 0 {
				return nil
			}
			return writeReport(cmd, ctx, "crossref", plan)
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Image directory (defaults to paths.images_dir)")
	cmd.Flags().BoolVar(&exactOnly, "exact", false, "Only match byte-identical duplicates")
	cmd.Flags().IntVar(&threshold, "threshold", 0, "Perceptual distance acceptance override")
	cmd.Flags().BoolVar(&apply, "apply", false, "Apply the computed renames")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the plan as JSON")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "Skip writing the batch report")
	return cmd
}
