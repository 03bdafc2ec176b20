/*
Package runargs prepares launch configurations for running or testing a modded game client.

It reads the run types published by a userdev config (JVM arguments, program arguments,
system properties and a main class), substitutes the placeholders they contain, and writes
argument files a process launcher can consume with the JVM's @file syntax.

# Concept

A build normally wires this up through its task graph. Here every input is a plain value in
a Request: the run type, the module path, the legacy classpath file, asset metadata and the
user's own overrides. The Writer resolves them and replaces the output files atomically.

The differences between preparing a game run, a test run, a JUnit run or an IDE run are
captured by domain.Variant instead of separate code paths.

# Placeholders

  - {modules}: absolute module paths joined by the platform path list separator (JVM arguments).
  - {minecraft_classpath_file}: absolute path of the legacy classpath file (system properties).
  - {assets_root}, {asset_index}: values from the asset properties file (program arguments).

A placeholder with no value fails the call with a *domain.ConfigurationError naming the field.

# Usage

	w := runargs.New(runargs.WithLogger(logger))
	res, err := w.WriteRunArguments(ctx, runargs.Request{
		RunName:              "client",
		Variant:              domain.VariantRun,
		RunDirectory:         "run",
		DescriptorFile:       "build/moddev/userdev-config.json",
		Modules:              []string{"libs/bootstraplauncher.jar", "libs/securejarhandler.jar"},
		LegacyClasspathFile:  "build/moddev/legacy-classpath.txt",
		AssetPropertiesFile:  "build/moddev/minecraft_assets.properties",
		JVMArgumentsFile:     "build/moddev/clientRunVmArgs.txt",
		ProgramArgumentsFile: "build/moddev/clientRunProgramArgs.txt",
	})
*/
package runargs
