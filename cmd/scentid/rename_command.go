package main

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"scentid/internal/analysis"
	"scentid/internal/catalog"
	"scentid/internal/resolver"
)

func newRenameCommand(ctx *commandContext) *cobra.Command {
	var dirFlag string
	var fromAnalysis bool
	var fromHandles bool
	var apply bool
	var updateCatalog bool
	var jsonOut bool
	var noReport bool

	cmd := &cobra.Command{
		Use:   "rename",
		Short: "Rename images from analysis results or catalog handles",
		Long: "Derives descriptive image names either from stored analysis results " +
			"(--from-analysis) or from catalog handles referencing numbered exports " +
			"(--from-handles). Without --apply the plan is only printed.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if fromAnalysis == fromHandles {
				return errors.New("choose exactly one of --from-analysis or --from-handles")
			}
			if updateCatalog && !apply {
				return errors.New("--update-catalog requires --apply")
			}

			dir, err := ctx.imagesDir(dirFlag)
			if err != nil {
				return err
			}
			r, err := ctx.newResolver()
			if err != nil {
				return err
			}

			var plan *resolver.Plan
			var store *catalog.Store
			if fromHandles || updateCatalog {
				store, err = ctx.openStore()
				if err != nil {
					return err
				}
				defer store.Close()
			}

			if fromAnalysis {
				plan, err = planFromAnalysisDir(ctx, cmd, r, dir)
			} else {
				plan, err = planFromCatalogHandles(cmd, r, store, dir)
			}
			if err != nil {
				return err
			}

			if apply {
				if err := r.Apply(cmd.Context(), plan); err != nil {
					return err
				}
				if updateCatalog {
					if err := updateCatalogImages(cmd, store, plan); err != nil {
						return err
					}
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
			return writeReport(cmd, ctx, "rename", plan)
		},
	}

	cmd.Flags().StringVarP(&dirFlag, "dir", "d", "", "Image directory (defaults to paths.images_dir)")
	cmd.Flags().BoolVar(&fromAnalysis, "from-analysis", false, "Derive names from stored analysis results")
	cmd.Flags().BoolVar(&fromHandles, "from-handles", false, "Derive names from catalog handles")
	cmd.Flags().BoolVar(&apply, "apply", false, "Apply the computed renames")
	cmd.Flags().BoolVar(&updateCatalog, "update-catalog", false, "Point catalog records at the renamed files")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit the plan as JSON")
	cmd.Flags().BoolVar(&noReport, "no-report", false, "Skip writing the batch report")
	return cmd
}

func planFromAnalysisDir(ctx *commandContext, cmd *cobra.Command, r *resolver.Resolver, dir string) (*resolver.Plan, error) {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return nil, err
	}
	results, err := analysis.LoadRecords(cfg.Paths.AnalysisDir, ctx.ensureLogger())
	if err != nil {
		return nil, err
	}
	if len(results) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "No analysis records under %s\n", cfg.Paths.AnalysisDir)
	}
	return r.PlanFromAnalysis(cmd.Context(), dir, results)
}

func planFromCatalogHandles(cmd *cobra.Command, r *resolver.Resolver, store *catalog.Store, dir string) (*resolver.Plan, error) {
	records, err := store.List(cmd.Context())
	if err != nil {
		return nil, err
	}
	return r.PlanFromHandles(cmd.Context(), dir, records)
}

// updateCatalogImages repoints records whose image was renamed in this batch.
func updateCatalogImages(cmd *cobra.Command, store *catalog.Store, plan *resolver.Plan) error {
	updated := 0
	for _, entry := range plan.Entries {
		if !entry.Applied || entry.RecordID == 0 {
			continue
		}
		ref := filepath.ToSlash(filepath.Join("images", entry.Target))
		if err := store.SetMainImage(cmd.Context(), entry.RecordID, ref); err != nil {
			return err
		}
		updated++
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Updated %d catalog record(s)\n", updated)
	return nil
}
