package tags

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/bgraf/tagwerk/option"
)

// Group collects every distinct spelling that shares one canonical key.
// Originals keep first-seen order so an operator can audit where a merge
// came from; Suggestion is the spelling proposed as the display form.
type Group struct {
	Key        string   `json:"normalized"`
	Originals  []string `json:"originals"`
	Suggestion string   `json:"suggestion"`
}

// Cluster groups raw tags by canonical key. Raws with an empty key are
// dropped. Groups appear in first-seen key order.
func (n *Normalizer) Cluster(raws []string) []Group {
	var (
		order []string
		byKey = make(map[string]*Group)
		seen  = make(map[string]map[string]struct{})
	)

	for _, raw := range raws {
		key := n.Key(raw)
		if key == "" {
			continue
		}

		group, ok := byKey[key]
		if !ok {
			group = &Group{Key: key}
			byKey[key] = group
			seen[key] = make(map[string]struct{})
			order = append(order, key)
		}

		if _, dup := seen[key][raw]; dup {
			continue
		}

		seen[key][raw] = struct{}{}
		group.Originals = append(group.Originals, raw)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		group := byKey[key]
		group.Suggestion = selectRepresentative(group.Originals)
		groups = append(groups, *group)
	}

	return groups
}

// FindSimilar returns the groups holding more than one distinct spelling.
// A key repeated under a single spelling is a duplicate, not a similarity.
func (n *Normalizer) FindSimilar(raws []string) []Group {
	var similar []Group
	for _, group := range n.Cluster(raws) {
		if len(group.Originals) > 1 {
			similar = append(similar, group)
		}
	}

	return similar
}

// selectRepresentative implements the display-form policy: prefer a
// Title-Cased spelling, else the first one seen. It is the single place to
// swap the policy, e.g. for a frequency-based heuristic.
func selectRepresentative(originals []string) string {
	return titleCased(originals).GetOr(originals[0])
}

func titleCased(originals []string) option.Option[string] {
	caser := cases.Title(language.Und)

	for _, original := range originals {
		trimmed := strings.TrimSpace(original)
		if trimmed != "" && caser.String(trimmed) == trimmed {
			return option.Some(original)
		}
	}

	return option.None[string]()
}
