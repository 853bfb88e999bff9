package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bgraf/tagwerk/catalog"
	"github.com/bgraf/tagwerk/config"
	"github.com/bgraf/tagwerk/tags"
)

// cleanCmd represents the clean command
var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Bulk-clean the tag payloads of a catalog export",
	Long: "Repairs double-encoded tag values, collapses spelling variants and\n" +
		"writes the export back with one display tag per canonical key.",
	RunE: runClean,
}

func init() {
	rootCmd.AddCommand(cleanCmd)

	cleanCmd.Flags().StringP("output", "o", "", "Output file (default: rewrite the export in place)")
	cleanCmd.Flags().Bool("dry-run", false, "Print the changes without writing")
}

func runClean(cmd *cobra.Command, args []string) error {
	if !config.HasCatalogExport() {
		return fmt.Errorf("no catalog export configured")
	}

	exportPath := config.CatalogExport()

	export, err := catalog.LoadExport(exportPath)
	if err != nil {
		return err
	}

	norm, err := config.Normalizer()
	if err != nil {
		return err
	}

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		return printCleanDiff(norm, export)
	}

	result := catalog.CleanItems(norm, export.Items)
	log.Printf("cleaned %d of %d items", result.Changed, result.Items)

	outPath, err := cmd.Flags().GetString("output")
	if err != nil {
		return err
	}

	if outPath == "" {
		outPath = exportPath
	}

	if err := export.Write(outPath); err != nil {
		return err
	}

	log.Printf("wrote %s", outPath)

	return nil
}

func printCleanDiff(norm *tags.Normalizer, export *catalog.Export) error {
	for i := range export.Items {
		item := &export.Items[i]

		before := item.TagStrings()
		after := norm.NormalizeTags(before)

		if strings.Join(before, "\x00") == strings.Join(after, "\x00") {
			continue
		}

		fmt.Printf("%s (%s):\n  - [%s]\n  + [%s]\n",
			item.Name,
			item.GUID,
			strings.Join(before, ", "),
			strings.Join(after, ", "),
		)
	}

	return nil
}
