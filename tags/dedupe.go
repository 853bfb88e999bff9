package tags

import (
	"sort"
	"strings"
)

// NormalizeTags collapses a raw tag list to one display spelling per
// canonical key, sorted case-insensitively. This is the form the catalog
// write path persists.
func (n *Normalizer) NormalizeTags(raws []string) []string {
	groups := n.Cluster(raws)

	out := make([]string, 0, len(groups))
	for _, group := range groups {
		out = append(out, group.Suggestion)
	}

	SortDisplay(out)

	return out
}

// SortDisplay orders display tags lexicographically, ignoring case.
func SortDisplay(tags []string) {
	sort.Slice(tags, func(i, j int) bool {
		return strings.ToLower(tags[i]) < strings.ToLower(tags[j])
	})
}
