package report

import (
	"sync"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/bgraf/tagwerk/tags"
)

// TagSet hands out one stable color per canonical key, so every spelling of
// a tag renders identically on the operator dashboard. Safe for concurrent
// use; the dashboard API shares one instance across requests.
type TagSet struct {
	norm *tags.Normalizer

	mu     sync.Mutex
	colors map[string]colorful.Color
	keys   []string
}

func NewTagSet(norm *tags.Normalizer) *TagSet {
	if norm == nil {
		norm = tags.NewNormalizer(nil)
	}

	return &TagSet{
		norm:   norm,
		colors: make(map[string]colorful.Color),
	}
}

func (ts *TagSet) HexColor(tag string) string {
	var (
		c  colorful.Color
		ok bool
	)

	key := ts.norm.Key(tag)

	ts.mu.Lock()
	defer ts.mu.Unlock()

	if c, ok = ts.colors[key]; !ok {
		c = colorful.HappyColor()
		ts.colors[key] = c
		ts.keys = append(ts.keys, key)
	}

	return c.Hex()
}

func (ts *TagSet) HexColors(tagNames ...string) []string {
	colors := make([]string, len(tagNames))

	for i, tag := range tagNames {
		colors[i] = ts.HexColor(tag)
	}

	return colors
}

// Keys returns the canonical keys in the order colors were assigned.
func (ts *TagSet) Keys() []string {
	ts.mu.Lock()
	defer ts.mu.Unlock()

	return append([]string(nil), ts.keys...)
}
