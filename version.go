package runargs

// Version is the release of this module, overridden at build time with -ldflags "-X".
var Version = "0.3.0"
