package tags

import (
	"fmt"
	"io"
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v2"
)

// AliasGroups maps a semantic category to its canonical keys and the known
// variant spellings of each key, e.g.
//
//	nationality:
//	  turkey: [turk, turkish, turkiye]
type AliasGroups map[string]map[string][]string

// BuiltinGroups returns the hand-maintained alias table shipped with the
// engine. Variants are recorded in their sanitized form.
func BuiltinGroups() AliasGroups {
	return AliasGroups{
		"nationality": {
			"turkey": {"turk", "turkish", "turkiye", "türkiye"},
		},
		"category": {
			"spices":     {"spice", "seasoning", "seasonings"},
			"vegetables": {"veggie", "veggies"},
			"fruit":      {"fruits"},
			"meat":       {"meats", "poultry"},
		},
		"brand": {
			"mr chef": {"mrchef", "mr-chef"},
		},
		"size": {
			"large": {"extra large", "xl"},
			"small": {"extra small", "xs"},
		},
	}
}

// Dictionary resolves variant spellings to canonical keys. It is built once
// at process start and never mutated afterwards, so concurrent lookups need
// no locking.
type Dictionary struct {
	canonical     map[string]string
	groups        AliasGroups
	tokenFallback bool
}

type DictionaryOption func(*Dictionary)

// WithGroups merges additional alias groups over the builtin table. Later
// groups win on conflicting variants.
func WithGroups(groups AliasGroups) DictionaryOption {
	return func(d *Dictionary) {
		d.merge(groups)
	}
}

// WithoutTokenFallback disables the first-token lookup, so compound tags
// such as "turkey-product" keep their own canonical key instead of
// collapsing onto the leading dictionary word.
func WithoutTokenFallback() DictionaryOption {
	return func(d *Dictionary) {
		d.tokenFallback = false
	}
}

func NewDictionary(opts ...DictionaryOption) *Dictionary {
	d := &Dictionary{
		canonical:     make(map[string]string),
		groups:        make(AliasGroups),
		tokenFallback: true,
	}

	d.merge(BuiltinGroups())

	for _, opt := range opts {
		opt(d)
	}

	return d
}

func (d *Dictionary) merge(groups AliasGroups) {
	for category, group := range groups {
		dst := d.groups[category]
		if dst == nil {
			dst = make(map[string][]string)
			d.groups[category] = dst
		}

		for canonical, variants := range group {
			canonical = strings.ToLower(strings.TrimSpace(canonical))
			if canonical == "" {
				continue
			}

			d.canonical[canonical] = canonical

			for _, variant := range variants {
				variant = strings.ToLower(strings.TrimSpace(variant))
				if variant == "" {
					continue
				}

				d.canonical[variant] = canonical
				dst[canonical] = append(dst[canonical], variant)
			}
		}
	}
}

// Resolve looks up a sanitized string and reports the canonical key it
// belongs to. Canonical keys resolve to themselves.
func (d *Dictionary) Resolve(key string) (string, bool) {
	canonical, ok := d.canonical[key]
	return canonical, ok
}

// Groups returns a copy of the merged alias table for reporting purposes.
func (d *Dictionary) Groups() AliasGroups {
	groups := make(AliasGroups, len(d.groups))
	for category, group := range d.groups {
		dst := make(map[string][]string, len(group))
		for canonical, variants := range group {
			dst[canonical] = append([]string(nil), variants...)
		}
		groups[category] = dst
	}

	return groups
}

// ReadAliasGroups parses a YAML alias table, the format of the
// hand-maintained overrides file.
func ReadAliasGroups(r io.Reader) (AliasGroups, error) {
	source, err := ioutil.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read alias table: %w", err)
	}

	groups := make(AliasGroups)
	if err := yaml.Unmarshal(source, &groups); err != nil {
		return nil, fmt.Errorf("parse alias table: %w", err)
	}

	return groups, nil
}
