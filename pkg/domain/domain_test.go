package domain_test

import (
	"errors"
	"testing"

	"github.com/aretw0/runargs/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestProperties_KeepsInsertionOrder(t *testing.T) {
	p := domain.NewProperties("b", "1", "a", "2")
	p.Set("b", "3")
	p.Set("c", "4")

	assert.Equal(t, []string{"b", "a", "c"}, p.Keys())
	v, ok := p.Get("b")
	assert.True(t, ok)
	assert.Equal(t, "3", v)
	assert.Equal(t, 3, p.Len())

	var zero domain.Properties
	_, ok = zero.Get("x")
	assert.False(t, ok)
	assert.Empty(t, zero.Entries())
}

func TestProperties_CopiesAreIndependent(t *testing.T) {
	original := domain.NewProperties("a", "1", "b", "2")

	replaced := original
	replaced.Set("a", "changed")

	appended := original
	appended.Set("c", "3")
	other := original
	other.Set("d", "4")

	assert.Equal(t, []domain.Property{{Key: "a", Value: "1"}, {Key: "b", Value: "2"}}, original.Entries())
	v, _ := replaced.Get("a")
	assert.Equal(t, "changed", v)

	assert.Equal(t, []string{"a", "b", "c"}, appended.Keys())
	assert.Equal(t, []string{"a", "b", "d"}, other.Keys())
	_, ok := original.Get("c")
	assert.False(t, ok)
	v, ok = appended.Get("c")
	require.True(t, ok)
	assert.Equal(t, "3", v)
}

func TestProperties_UnmarshalYAML(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		keys    []string
		values  []string
		wantErr string
	}{
		{
			name:   "document order",
			input:  "z: 1\na: true\nm: text\n",
			keys:   []string{"z", "a", "m"},
			values: []string{"1", "true", "text"},
		},
		{
			name:   "json",
			input:  `{"second": "2", "first": null}`,
			keys:   []string{"second", "first"},
			values: []string{"2", ""},
		},
		{
			name:    "duplicate key",
			input:   "a: 1\na: 2\n",
			wantErr: "duplicate property",
		},
		{
			name:    "nested value",
			input:   "a: {b: c}\n",
			wantErr: "must have a scalar value",
		},
		{
			name:    "not a mapping",
			input:   "[a, b]\n",
			wantErr: "expected a mapping",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p domain.Properties
			err := yaml.Unmarshal([]byte(tt.input), &p)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.keys, p.Keys())
			for i, k := range tt.keys {
				v, _ := p.Get(k)
				assert.Equal(t, tt.values[i], v, k)
			}
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := map[string]domain.Level{
		"":        domain.LevelInfo,
		"debug":   domain.LevelDebug,
		" Trace ": domain.LevelTrace,
		"warning": domain.LevelWarn,
		"ERROR":   domain.LevelError,
	}
	for input, want := range tests {
		got, err := domain.ParseLevel(input)
		require.NoError(t, err, input)
		assert.Equal(t, want, got, input)
	}

	_, err := domain.ParseLevel("loud")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInvalidConfig))
	assert.Contains(t, err.Error(), "Available: [error, warn, info, debug, trace]")
}

func TestParseVariant(t *testing.T) {
	v, err := domain.ParseVariant("")
	require.NoError(t, err)
	assert.Equal(t, domain.VariantRun, v)

	v, err = domain.ParseVariant("JUnit")
	require.NoError(t, err)
	assert.Equal(t, "junit", v.Name)
	assert.Equal(t, domain.DefaultRunType, v.RunType("server"), "junit always uses the client run")
	assert.Equal(t, "server", domain.VariantRun.RunType("server"))

	_, err = domain.ParseVariant("bench")
	require.Error(t, err)
	var cfgErr *domain.ConfigurationError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, []string{"run", "test", "junit", "ide"}, cfgErr.Available)
}

func TestDescriptorSet_Lookup(t *testing.T) {
	set := domain.NewDescriptorSet(domain.RunDescriptor{Name: "server"}, domain.RunDescriptor{Name: "client"})

	assert.Equal(t, []string{"client", "server"}, set.Names())
	assert.Equal(t, 2, set.Len())

	run, err := set.Lookup("client")
	require.NoError(t, err)
	assert.Equal(t, "client", run.Name)

	_, err = set.Lookup("data")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUnknownRunType))
	assert.True(t, domain.IsConfigurationError(err))
	assert.Equal(t, `run_type: trying to prepare unknown run type "data". Available: [client, server]`, err.Error())
}

func TestErrors(t *testing.T) {
	missing := domain.MissingValue(domain.FieldAssetIndex, domain.PlaceholderAssetIndex)
	assert.True(t, errors.Is(missing, domain.ErrMissingValue))
	assert.Contains(t, missing.Error(), domain.FieldAssetIndex)

	agg := &domain.AggregateError{Errors: []error{missing, errors.New("other")}}
	assert.True(t, errors.Is(agg, domain.ErrMissingValue))
	assert.True(t, domain.IsConfigurationError(agg))
	assert.Contains(t, agg.Error(), "other")

	assert.False(t, domain.IsConfigurationError(errors.New("plain")))
}
