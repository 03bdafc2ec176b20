// Package assets reads the asset metadata file produced for a game version.
package assets

import (
	"fmt"

	"github.com/aretw0/runargs/pkg/domain"
	"github.com/magiconair/properties"
	"github.com/mitchellh/mapstructure"
)

// loader reads Java properties without ${} expansion: asset paths are literal.
var loader = &properties.Loader{Encoding: properties.UTF8, DisableExpansion: true}

// Load reads the asset properties file at path.
func Load(path string) (domain.AssetMetadata, error) {
	p, err := loader.LoadFile(path)
	if err != nil {
		return domain.AssetMetadata{}, fmt.Errorf("failed to read asset properties: %w", err)
	}
	return Decode(p.Map())
}

// Parse reads asset metadata from the contents of a properties file.
func Parse(data []byte) (domain.AssetMetadata, error) {
	p, err := loader.LoadBytes(data)
	if err != nil {
		return domain.AssetMetadata{}, fmt.Errorf("failed to parse asset properties: %w", err)
	}
	return Decode(p.Map())
}

// Decode maps raw key/value pairs onto AssetMetadata. Unknown keys are ignored.
func Decode(values map[string]string) (domain.AssetMetadata, error) {
	var meta domain.AssetMetadata
	if err := mapstructure.Decode(values, &meta); err != nil {
		return domain.AssetMetadata{}, fmt.Errorf("failed to decode asset properties: %w", err)
	}
	return meta, nil
}
