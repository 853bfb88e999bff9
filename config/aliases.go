package config

import (
	"fmt"
	"os"

	"github.com/bgraf/tagwerk/tags"
)

// Dictionary builds the process-wide alias dictionary once at startup: the
// builtin table, plus the overrides file when one is configured.
func Dictionary() (*tags.Dictionary, error) {
	var opts []tags.DictionaryOption

	if HasAliasFile() {
		f, err := os.Open(AliasFile())
		if err != nil {
			return nil, fmt.Errorf("open alias table: %w", err)
		}
		defer f.Close()

		groups, err := tags.ReadAliasGroups(f)
		if err != nil {
			return nil, err
		}

		opts = append(opts, tags.WithGroups(groups))
	}

	return tags.NewDictionary(opts...), nil
}

// Normalizer is Dictionary wrapped into a ready-to-use normalizer.
func Normalizer() (*tags.Normalizer, error) {
	dict, err := Dictionary()
	if err != nil {
		return nil, err
	}

	return tags.NewNormalizer(dict), nil
}
