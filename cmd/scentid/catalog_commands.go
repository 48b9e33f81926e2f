package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"scentid/internal/analysis"
	"scentid/internal/catalog"
)

func newCatalogCommand(ctx *commandContext) *cobra.Command {
	catalogCmd := &cobra.Command{
		Use:   "catalog",
		Short: "Catalog store utilities",
	}

	catalogCmd.AddCommand(newCatalogImportCommand(ctx))
	catalogCmd.AddCommand(newCatalogExportCommand(ctx))
	catalogCmd.AddCommand(newCatalogListCommand(ctx))
	catalogCmd.AddCommand(newCatalogMatchCommand(ctx))

	return catalogCmd
}

func newCatalogImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <products.json>",
		Short: "Import records from a unified-products JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.ImportJSON(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d record(s)\n", count)
			return nil
		},
	}
}

func newCatalogExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <products.json>",
		Short: "Export every record to a unified-products JSON file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			count, err := store.ExportJSON(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d record(s) to %s\n", count, args[0])
			return nil
		},
	}
}

func newCatalogListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List catalog records",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			records, err := store.List(cmd.Context())
			if err != nil {
				return err
			}
			if jsonOut {
				return writeJSON(cmd, records)
			}

			headers := []string{"ID", "Handle", "Title", "Brand", "Main image", "Analyzed"}
			rows := make([][]string, 0, len(records))
			for _, record := range records {
				main, _ := record.MainImage()
				rows = append(rows, []string{
					strconv.FormatInt(record.ID, 10),
					record.Handle,
					record.Title,
					record.PrimaryBrand,
					main,
					yesNo(record.Analysis != nil && record.Analysis.Analyzed),
				})
			}
			aligns := []columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(headers, rows, aligns))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit records as JSON")
	return cmd
}

// newCatalogMatchCommand resolves stored analysis results to catalog records
// and attaches the analysis metadata to the matched ones.
func newCatalogMatchCommand(ctx *commandContext) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "match",
		Short: "Match analysis results to catalog records",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			r, err := ctx.newResolver()
			if err != nil {
				return err
			}
			store, err := ctx.openStore()
			if err != nil {
				return err
			}
			defer store.Close()

			results, err := analysis.LoadRecords(cfg.Paths.AnalysisDir, ctx.ensureLogger())
			if err != nil {
				return err
			}
			if len(results) == 0 {
				return errors.New("no analysis records to match; run analyze first")
			}
			records, err := store.List(cmd.Context())
			if err != nil {
				return err
			}

			matched := 0
			out := cmd.OutOrStdout()
			for _, result := range results {
				record, score, ok := r.ResolveHandle(result, records)
				if !ok {
					fmt.Fprintf(out, "%s: no catalog match\n", result.Filename)
					continue
				}
				fmt.Fprintf(out, "%s -> %s (score %.1f)\n", result.Filename, record.Handle, score)
				matched++
				if dryRun {
					continue
				}
				if err := store.SetAnalysis(cmd.Context(), record.ID, analysisFor(result)); err != nil {
					return err
				}
			}
			fmt.Fprintf(out, "%d of %d result(s) matched\n", matched, len(results))
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Report matches without updating the catalog")
	return cmd
}

func analysisFor(result analysis.Result) *catalog.Analysis {
	products := make([]catalog.IdentifiedProduct, 0, len(result.Mentions))
	for _, m := range result.Mentions {
		products = append(products, catalog.IdentifiedProduct{
			Name:  m.Name,
			Brand: m.Brand,
			Role:  string(m.Role),
		})
	}
	return &catalog.Analysis{
		Analyzed:           true,
		ProductsIdentified: len(products),
		Products:           products,
		AnalyzedAt:         result.Timestamp,
	}
}

func yesNo(value bool) string {
	if value {
		return "yes"
	}
	return "no"
}
