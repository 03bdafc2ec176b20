package config

import (
	"github.com/aretw0/runargs"
	"github.com/aretw0/runargs/internal/naming"
	"github.com/aretw0/runargs/pkg/domain"
)

// Request builds the writer request for r. Descriptors are shared by every run of one
// invocation, so the caller loads them once and passes them in.
func (f *File) Request(r Run, descriptors *domain.DescriptorSet) (runargs.Request, error) {
	variant, err := domain.ParseVariant(r.Variant)
	if err != nil {
		return runargs.Request{}, err
	}
	level, err := domain.ParseLevel(r.LogLevel)
	if err != nil {
		return runargs.Request{}, err
	}

	runType := r.Type
	if runType == "" {
		runType = r.Name
	}

	outputDir := f.OutputDir
	if outputDir == "" {
		outputDir = DefaultOutputDir
	}
	output := func(explicit, suffix string) string {
		if explicit != "" {
			return f.Resolve(explicit)
		}
		return f.Resolve(outputDir + "/" + naming.NameOf("", r.Name, suffix))
	}

	gameDir := r.GameDirectory
	if gameDir == "" {
		gameDir = DefaultGameDirectory
	}

	modules := make([]string, len(f.Modules))
	for i, m := range f.Modules {
		modules[i] = f.Resolve(m)
	}

	req := runargs.Request{
		RunName:             runType,
		Variant:             variant,
		RunDirectory:        f.Resolve(gameDir),
		Descriptors:         descriptors,
		DescriptorFile:      f.Resolve(f.Descriptor),
		Modules:             modules,
		LegacyClasspathFile: f.Resolve(f.LegacyClasspathFile),
		AssetPropertiesFile: f.Resolve(f.AssetProperties),
		JVMArguments:        r.JVMArguments,
		ProgramArguments:    r.ProgramArguments,
		SystemProperties:    r.SystemProperties,
		LogLevel:            level,
		JVMArgumentsFile:    output(r.JVMArgumentsFile, "runVmArgs.txt"),
	}
	if !variant.Combined {
		req.ProgramArgumentsFile = output(r.ProgramArgumentsFile, "runProgramArgs.txt")
	}
	if r.Log4j || r.Log4jConfigFile != "" {
		req.Log4jConfigFile = output(r.Log4jConfigFile, "log4j2.xml")
	}
	return req, nil
}
