package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
	"github.com/spf13/cobra"

	"github.com/bgraf/tagwerk/catalog"
	"github.com/bgraf/tagwerk/config"
	"github.com/bgraf/tagwerk/tags"
)

// reviewCmd represents the review command
var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Interactively review near-duplicate tag groups",
	Long: "Walks through every group of similar spellings in the catalog export\n" +
		"and lets the operator pick or confirm the display form. Confirmed\n" +
		"choices are applied to the export.",
	RunE: runReview,
}

func init() {
	rootCmd.AddCommand(reviewCmd)
}

func runReview(cmd *cobra.Command, args []string) error {
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

	similar := norm.FindSimilar(export.AllTags())
	if len(similar) == 0 {
		log.Print("no similar tag groups found")
		return nil
	}

	chosen := make(map[string]string)

	for _, group := range similar {
		choice := group.Suggestion

		prompt := &survey.Select{
			Message: fmt.Sprintf("Display form for '%s' (%s)", group.Key, strings.Join(group.Originals, ", ")),
			Options: group.Originals,
			Default: group.Suggestion,
		}

		err := survey.AskOne(prompt, &choice)
		exitOnInterrupt(err)

		chosen[group.Key] = choice
	}

	// Review choices before touching the export.
	for key, choice := range chosen {
		fmt.Printf("%s -> %q\n", key, choice)
	}

	isConfirmed := true

	prompt := &survey.Confirm{
		Message: "Apply to export",
		Default: isConfirmed,
	}

	err = survey.AskOne(prompt, &isConfirmed)
	exitOnInterrupt(err)

	if !isConfirmed {
		return nil
	}

	changed := applyChoices(norm, chosen, export.Items)
	log.Printf("rewrote %d items", changed)

	if err := export.Write(exportPath); err != nil {
		return err
	}

	log.Printf("wrote %s", exportPath)

	return nil
}

// applyChoices rewrites every item's tags, substituting the operator's
// display choice for all members of a reviewed group.
func applyChoices(norm *tags.Normalizer, chosen map[string]string, items []catalog.Item) int {
	changed := 0

	for i := range items {
		before := items[i].TagStrings()

		seen := make(map[string]struct{})
		after := make([]string, 0, len(before))

		for _, tag := range before {
			key := norm.Key(tag)
			if key == "" {
				continue
			}

			if choice, ok := chosen[key]; ok {
				tag = choice
			}

			if _, dup := seen[key]; dup {
				continue
			}

			seen[key] = struct{}{}
			after = append(after, tag)
		}

		tags.SortDisplay(after)

		if strings.Join(before, "\x00") != strings.Join(after, "\x00") {
			changed++
		}

		items[i].Tags = after
	}

	return changed
}

func exitOnInterrupt(err error) {
	if err == terminal.InterruptErr {
		log.Fatal("interrupted")
	}
}
