package ecpoint

// Version is populated at build time via ldflags.
var Version = "v0.0.0-in-progress"

// BuildVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-in-progress.
func BuildVersion() string {
	return Version
}
