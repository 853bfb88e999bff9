package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bgraf/tagwerk/catalog"
	"github.com/bgraf/tagwerk/config"
	"github.com/bgraf/tagwerk/tags"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [TAG...]",
	Short: "Report duplicate and near-duplicate tags",
	Long: "Computes the diagnostic report over a tag corpus: total and unique\n" +
		"counts, duplicated canonical keys and groups of similar spellings.\n" +
		"Tags come from the arguments, from stdin, or from the configured\n" +
		"catalog export file.",
	RunE: runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().Bool("json", false, "Emit the report as JSON")
}

func runStats(cmd *cobra.Command, args []string) error {
	var (
		raws []string
		err  error
	)

	if len(args) == 0 && config.HasCatalogExport() {
		export, err := catalog.LoadExport(config.CatalogExport())
		if err != nil {
			return err
		}
		raws = export.AllTags()
	} else {
		if raws, err = gatherTags(args); err != nil {
			return err
		}
		raws = tags.CleanForStorage(raws)
	}

	norm, err := config.Normalizer()
	if err != nil {
		return err
	}

	statistics := norm.Statistics(raws)

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return json.NewEncoder(os.Stdout).Encode(statistics)
	}

	printStatistics(statistics)

	return nil
}

func printStatistics(statistics tags.Statistics) {
	fmt.Printf("total:  %d\n", statistics.Total)
	fmt.Printf("unique: %d\n", statistics.Unique)

	if len(statistics.Duplicates) > 0 {
		fmt.Println("\nduplicated keys:")
		for _, dup := range statistics.Duplicates {
			fmt.Printf("  %4dx %s\n", dup.Count, dup.Tag)
		}
	}

	if len(statistics.Similar) > 0 {
		fmt.Println("\nsimilar spellings:")
		for _, group := range statistics.Similar {
			fmt.Printf("  %s: %s -> %q\n", group.Key, strings.Join(group.Originals, ", "), group.Suggestion)
		}
	}
}
