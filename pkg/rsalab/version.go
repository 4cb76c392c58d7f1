package rsalab

var (
	Version = "v0.0.0-dev"
)

// LibraryVersion returns the semantic version populated at build time via
// ldflags. In development it defaults to v0.0.0-dev.
func LibraryVersion() string {
	return Version
}
