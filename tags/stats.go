package tags

import "sort"

// DuplicateCount reports how often a canonical key occurred across all of
// its spellings, exact repeats included.
type DuplicateCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// Statistics is the operator-facing diagnostic report over a raw tag list.
// Unique and Normalized both count distinct non-empty canonical keys.
type Statistics struct {
	Total      int              `json:"total"`
	Unique     int              `json:"unique"`
	Normalized int              `json:"normalized"`
	Duplicates []DuplicateCount `json:"duplicates"`
	Similar    []Group          `json:"similar"`
}

// Statistics computes the report without mutating anything.
func (n *Normalizer) Statistics(raws []string) Statistics {
	counts := make(map[string]int)
	for _, raw := range raws {
		if key := n.Key(raw); key != "" {
			counts[key]++
		}
	}

	var duplicates []DuplicateCount
	for key, count := range counts {
		if count > 1 {
			duplicates = append(duplicates, DuplicateCount{Tag: key, Count: count})
		}
	}

	// Descending by count for triage, key order as tie-break.
	sort.Slice(duplicates, func(i, j int) bool {
		if duplicates[i].Count != duplicates[j].Count {
			return duplicates[i].Count > duplicates[j].Count
		}
		return duplicates[i].Tag < duplicates[j].Tag
	})

	return Statistics{
		Total:      len(raws),
		Unique:     len(counts),
		Normalized: len(counts),
		Duplicates: duplicates,
		Similar:    n.FindSimilar(raws),
	}
}
