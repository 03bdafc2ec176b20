package domain

import (
	"fmt"
	"sort"
)

// RunDescriptor is one launch profile published by the userdev config.
// Templates may contain placeholder tokens that are substituted at write time.
type RunDescriptor struct {
	Name      string
	MainClass string
	JVMArgs   []string
	Args      []string
	Props     Properties
	Env       Properties
}

// DescriptorSet maps run-type names to descriptors. It is read-only once built.
type DescriptorSet struct {
	runs map[string]RunDescriptor
}

// NewDescriptorSet indexes the given descriptors by name. Later duplicates replace earlier ones.
func NewDescriptorSet(runs ...RunDescriptor) *DescriptorSet {
	s := &DescriptorSet{runs: make(map[string]RunDescriptor, len(runs))}
	for _, r := range runs {
		s.runs[r.Name] = r
	}
	return s
}

// Names returns the available run types, sorted.
func (s *DescriptorSet) Names() []string {
	names := make([]string, 0, len(s.runs))
	for name := range s.runs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of run types.
func (s *DescriptorSet) Len() int {
	return len(s.runs)
}

// Lookup returns the descriptor for name, or a ConfigurationError listing every available name.
func (s *DescriptorSet) Lookup(name string) (RunDescriptor, error) {
	r, ok := s.runs[name]
	if !ok {
		return RunDescriptor{}, &ConfigurationError{
			Field:     FieldRunType,
			Reason:    fmt.Sprintf("trying to prepare unknown run type %q", name),
			Available: s.Names(),
			Err:       ErrUnknownRunType,
		}
	}
	return r, nil
}

// AssetMetadata holds the values read from the asset properties file.
// Either field may be empty; only templates that need a value fail.
type AssetMetadata struct {
	AssetsRoot string `mapstructure:"assets_root"`
	AssetIndex string `mapstructure:"asset_index"`
}
