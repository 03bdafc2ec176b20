package domain

// Placeholder tokens recognised in run descriptor templates.
// A template is substituted only when it is exactly equal to one of these.
const (
	PlaceholderModules         = "{modules}"
	PlaceholderLegacyClasspath = "{minecraft_classpath_file}"
	PlaceholderAssetsRoot      = "{assets_root}"
	PlaceholderAssetIndex      = "{asset_index}"
)

// Field names reported in ConfigurationError when a placeholder cannot be resolved.
// The asset keys double as the keys in the asset properties file.
const (
	FieldModules         = "modules"
	FieldLegacyClasspath = "legacy_classpath_file"
	FieldAssetsRoot      = "assets_root"
	FieldAssetIndex      = "asset_index"
	FieldRunType         = "run_type"
)

// TargetFlag is the program argument whose value the junit variant redirects.
const TargetFlag = "--target"

// JUnitTarget is the launch target used when running unit tests inside the game.
const JUnitTarget = "forgejunituserdev"

// DefaultRunType is the run type used by variants that cannot select one.
const DefaultRunType = "client"
