package cmd

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bgraf/tagwerk/config"
	"github.com/bgraf/tagwerk/tags"
)

// normalizeCmd represents the normalize command
var normalizeCmd = &cobra.Command{
	Use:   "normalize [TAG...]",
	Short: "Deduplicate and canonicalize a list of tags",
	Long: "Collapses spelling variants onto one display form per canonical key.\n" +
		"Tags are taken from the arguments, or read line by line from stdin.",
	RunE: runNormalize,
}

func init() {
	rootCmd.AddCommand(normalizeCmd)

	normalizeCmd.Flags().Bool("json", false, "Emit JSON instead of plain lines")
	normalizeCmd.Flags().Bool("keys", false, "Print the canonical key of every input tag")
}

func runNormalize(cmd *cobra.Command, args []string) error {
	raws, err := gatherTags(args)
	if err != nil {
		return err
	}

	norm, err := config.Normalizer()
	if err != nil {
		return err
	}

	if showKeys, _ := cmd.Flags().GetBool("keys"); showKeys {
		for _, raw := range raws {
			fmt.Printf("%s\t%s\n", raw, norm.Key(raw))
		}
		return nil
	}

	normalized := norm.NormalizeTags(tags.CleanForStorage(raws))

	if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"tags": normalized,
		})
	}

	for _, tag := range normalized {
		fmt.Println(tag)
	}

	return nil
}

// gatherTags takes tags from the arguments, or reads stdin lines when no
// arguments were given.
func gatherTags(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}

	var raws []string

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		raws = append(raws, scanner.Text())
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return raws, nil
}
