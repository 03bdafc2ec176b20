// Package userdev loads the run descriptors published in a userdev configuration file.
//
// The file is usually the vendor's config.json, but the same shape written as YAML is accepted.
// Both are read through yaml.v3 so that property and environment maps keep their document order.
package userdev

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"sync"

	"github.com/aretw0/runargs/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"github.com/xeipuuv/gojsonschema"
	"gopkg.in/yaml.v3"
)

//go:embed schema.json
var schemaJSON string

var loadSchema = sync.OnceValues(func() (*gojsonschema.Schema, error) {
	return gojsonschema.NewSchema(gojsonschema.NewStringLoader(schemaJSON))
})

// runBody is the part of a run entry decoded through mapstructure.
// Ordered maps (props, env) are read from the YAML node directly.
type runBody struct {
	Main    string   `mapstructure:"main"`
	Args    []string `mapstructure:"args"`
	JVMArgs []string `mapstructure:"jvmArgs"`
}

// Load reads and parses the descriptor file at path.
func Load(path string) (*domain.DescriptorSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read userdev config: %w", err)
	}
	set, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return set, nil
}

// Parse decodes a descriptor document. Shape problems are reported as configuration errors.
func Parse(data []byte) (*domain.DescriptorSet, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, invalid("", fmt.Sprintf("malformed document: %v", err))
	}
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return nil, invalid("", "empty document")
	}

	if err := validate(&root); err != nil {
		return nil, err
	}

	runsNode := mappingValue(root.Content[0], "runs")
	if runsNode == nil {
		return nil, invalid("runs", "missing runs section")
	}

	var runs []domain.RunDescriptor
	for i := 0; i+1 < len(runsNode.Content); i += 2 {
		name := runsNode.Content[i].Value
		run, err := decodeRun(name, runsNode.Content[i+1])
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return domain.NewDescriptorSet(runs...), nil
}

func validate(root *yaml.Node) error {
	schema, err := loadSchema()
	if err != nil {
		return fmt.Errorf("failed to compile descriptor schema: %w", err)
	}

	var generic any
	if err := root.Decode(&generic); err != nil {
		return invalid("", fmt.Sprintf("malformed document: %v", err))
	}

	result, err := schema.Validate(gojsonschema.NewGoLoader(generic))
	if err != nil {
		return invalid("", fmt.Sprintf("cannot validate document: %v", err))
	}
	if result.Valid() {
		return nil
	}

	var errs []error
	for _, re := range result.Errors() {
		errs = append(errs, invalid(re.Field(), re.Description()))
	}
	return &domain.AggregateError{Errors: errs}
}

func decodeRun(name string, node *yaml.Node) (domain.RunDescriptor, error) {
	var raw map[string]any
	if err := node.Decode(&raw); err != nil {
		return domain.RunDescriptor{}, invalid("runs."+name, err.Error())
	}

	var body runBody
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &body,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return domain.RunDescriptor{}, err
	}
	if err := decoder.Decode(raw); err != nil {
		return domain.RunDescriptor{}, invalid("runs."+name, err.Error())
	}

	run := domain.RunDescriptor{
		Name:      name,
		MainClass: body.Main,
		JVMArgs:   body.JVMArgs,
		Args:      body.Args,
	}
	if props := mappingValue(node, "props"); props != nil {
		if err := props.Decode(&run.Props); err != nil {
			return domain.RunDescriptor{}, invalid("runs."+name+".props", err.Error())
		}
	}
	if env := mappingValue(node, "env"); env != nil {
		if err := env.Decode(&run.Env); err != nil {
			return domain.RunDescriptor{}, invalid("runs."+name+".env", err.Error())
		}
	}
	return run, nil
}

// mappingValue returns the value node stored under key, or nil.
func mappingValue(node *yaml.Node, key string) *yaml.Node {
	if node.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

func invalid(field, reason string) error {
	return &domain.ConfigurationError{Field: field, Reason: reason, Err: domain.ErrInvalidDescriptor}
}

// IsInvalid reports whether err was caused by a malformed descriptor.
func IsInvalid(err error) bool {
	return errors.Is(err, domain.ErrInvalidDescriptor)
}
