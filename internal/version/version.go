package version

// Version is overridden at build time with
// -ldflags "-X github.com/ringkit/ringkit/internal/version.Version=..."
var Version = "0.0.0-dev"
