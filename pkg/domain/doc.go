/*
Package domain contains the core models shared by the run argument writer and its adapters.

It defines what a run descriptor looks like once loaded, how user overrides are carried,
and which errors a caller can match on. Loading and writing live elsewhere (pkg/adapters,
pkg/argfile, pkg/log4j); this package only holds values and the rules that apply to them.

# Key Entities

  - RunDescriptor: A named launch profile (client, server, data...) with argument templates.
  - DescriptorSet: All run descriptors published by one userdev config file.
  - Properties: An ordered, key-unique string map (system properties, environment).
  - AssetMetadata: The assets root and asset index resolved for the game version.
  - Variant: The capability set of a preparation mode (run, test, junit, ide).
  - ConfigurationError: A user-facing mistake in the build configuration.
*/
package domain
