package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// overlayFile is the YAML shape operators can supply to extend the catalog.
type overlayFile struct {
	Destinations   map[string]Destination     `yaml:"destinations"`
	Accommodations map[string][]Accommodation `yaml:"accommodations"`
	Activities     map[string][]Activity      `yaml:"activities"`
}

// LoadOverlay merges extra destinations, accommodations, and activities from
// a YAML file into the catalog. New destination keys are appended after the
// built-in ones; existing keys are replaced.
func (c *Catalog) LoadOverlay(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading catalog overlay %s: %w", path, err)
	}

	var overlay overlayFile
	if err := yaml.Unmarshal(data, &overlay); err != nil {
		return fmt.Errorf("parsing catalog overlay %s: %w", path, err)
	}

	for key, dest := range overlay.Destinations {
		key = NormalizeKey(key)
		if _, exists := c.destinations[key]; !exists {
			c.keys = append(c.keys, key)
		}
		c.destinations[key] = dest
	}
	for key, accs := range overlay.Accommodations {
		c.accommodations[NormalizeKey(key)] = accs
	}
	for key, acts := range overlay.Activities {
		c.activities[NormalizeKey(key)] = acts
	}

	return nil
}
