package catalog

import (
	"github.com/bgraf/tagwerk/tags"
)

type CleanResult struct {
	Items   int
	Changed int
}

// CleanItems rewrites every item's tag payload to its canonical stored
// form: parsed, artifact-repaired, deduplicated and display-cased. Items
// without a tag payload are left untouched. Returns how many items were
// rewritten.
func CleanItems(norm *tags.Normalizer, items []Item) CleanResult {
	result := CleanResult{Items: len(items)}

	for i := range items {
		if items[i].Tags == nil {
			continue
		}

		cleaned := norm.NormalizeTags(items[i].TagStrings())
		if !equalTags(items[i].Tags, cleaned) {
			result.Changed++
		}
		items[i].Tags = cleaned
	}

	return result
}

// equalTags reports whether the stored payload already is exactly the
// cleaned string list. Any other shape counts as changed.
func equalTags(stored interface{}, cleaned []string) bool {
	previous, ok := stored.([]string)
	if !ok {
		list, isList := stored.([]interface{})
		if !isList || len(list) != len(cleaned) {
			return false
		}

		for i, element := range list {
			s, isString := element.(string)
			if !isString || s != cleaned[i] {
				return false
			}
		}

		return true
	}

	if len(previous) != len(cleaned) {
		return false
	}

	for i := range previous {
		if previous[i] != cleaned[i] {
			return false
		}
	}

	return true
}
