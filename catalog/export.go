package catalog

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/google/uuid"

	"github.com/bgraf/tagwerk/tags"
)

// Item is one catalog entry as it appears in an export file. Tags carries
// whatever shape the legacy write path stored: a comma string, a JSON
// encoded array, a nested one, or a proper array.
type Item struct {
	GUID uuid.UUID   `json:"guid"`
	Name string      `json:"name"`
	Tags interface{} `json:"tags,omitempty"`
}

// TagStrings returns the item's tags as a flat, artifact-free string list.
func (it *Item) TagStrings() []string {
	return tags.CleanForStorage(tags.ParseInput(it.Tags))
}

type Export struct {
	Items []Item `json:"items"`
}

// LoadExport reads a catalog export file. Items without a GUID receive one
// so operators can reference them in review output.
func LoadExport(path string) (*Export, error) {
	source, err := ioutil.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read export: %w", err)
	}

	export := &Export{}
	if err := json.Unmarshal(source, export); err != nil {
		return nil, fmt.Errorf("parse export '%s': %w", path, err)
	}

	for i := range export.Items {
		if export.Items[i].GUID == uuid.Nil {
			export.Items[i].GUID = uuid.New()
		}
	}

	return export, nil
}

// Write stores the export back to disk.
func (e *Export) Write(path string) error {
	encoded, err := json.MarshalIndent(e, "", "  ")
	if err != nil {
		return fmt.Errorf("encode export: %w", err)
	}

	if err := ioutil.WriteFile(path, append(encoded, '\n'), os.FileMode(0644)); err != nil {
		return fmt.Errorf("write export '%s': %w", path, err)
	}

	return nil
}

// AllTags collects the cleaned tags of every item, repeats included, for
// corpus-wide statistics.
func (e *Export) AllTags() []string {
	var all []string
	for i := range e.Items {
		all = append(all, e.Items[i].TagStrings()...)
	}

	return all
}
