package domain

import (
	"fmt"
	"strings"
)

// Variant describes how a run is prepared. The same writer serves every variant;
// only these capabilities differ.
type Variant struct {
	Name string

	// FixedRunType forces the run type regardless of what the caller asked for.
	FixedRunType string

	// EmitsMainClass writes the descriptor's main class ahead of the program arguments.
	EmitsMainClass bool

	// RedirectTarget, when set, replaces the value following TargetFlag.
	RedirectTarget string

	// UserArguments allows extra JVM/program arguments and system properties from the caller.
	UserArguments bool

	// SectionComments writes "# ..." headers and blank separators between blocks.
	SectionComments bool

	// Combined writes program arguments into the JVM argument file (IDE launchers).
	Combined bool

	// Log4jInRunDirectory writes log4j2.xml into the run directory when no path is given.
	Log4jInRunDirectory bool
}

var (
	// VariantRun prepares a named run for launching the game.
	VariantRun = Variant{
		Name:            "run",
		EmitsMainClass:  true,
		UserArguments:   true,
		SectionComments: true,
	}

	// VariantTest prepares the client run for a test launcher that supplies its own main class.
	VariantTest = Variant{
		Name:            "test",
		FixedRunType:    DefaultRunType,
		UserArguments:   true,
		SectionComments: true,
	}

	// VariantJUnit prepares the client run for JUnit tests executed inside the game.
	VariantJUnit = Variant{
		Name:           "junit",
		FixedRunType:   DefaultRunType,
		RedirectTarget: JUnitTarget,
	}

	// VariantIDE writes a single argument file an IDE run configuration can pass to the JVM.
	VariantIDE = Variant{
		Name:                "ide",
		EmitsMainClass:      true,
		SectionComments:     true,
		Combined:            true,
		Log4jInRunDirectory: true,
	}
)

// Variants lists the built-in variants.
var Variants = []Variant{VariantRun, VariantTest, VariantJUnit, VariantIDE}

// ParseVariant returns the built-in variant with the given name. An empty name yields VariantRun.
func ParseVariant(name string) (Variant, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		return VariantRun, nil
	}
	names := make([]string, 0, len(Variants))
	for _, v := range Variants {
		if v.Name == name {
			return v, nil
		}
		names = append(names, v.Name)
	}
	return Variant{}, &ConfigurationError{
		Field:     "variant",
		Reason:    fmt.Sprintf("unknown variant %q", name),
		Available: names,
		Err:       ErrInvalidConfig,
	}
}

// RunType returns the run type to look up for a caller request.
func (v Variant) RunType(requested string) string {
	if v.FixedRunType != "" {
		return v.FixedRunType
	}
	return requested
}

func (v Variant) String() string {
	return v.Name
}
