// Package version holds build metadata injected at link time.
package version

// Set via -ldflags "-X github.com/doeshing/glot-go/internal/version.Version=...".
var (
	Version   = "0.1.0"
	Commit    = ""
	BuildDate = ""
)
