package version

// Build information set by ldflags
var (
	Version = "dev"     // -X github.com/wolfe-services/tabcat/internal/version.Version={{.Version}}
	Commit  = "unknown" // -X github.com/wolfe-services/tabcat/internal/version.Commit={{.Commit}}
	Date    = "unknown" // -X github.com/wolfe-services/tabcat/internal/version.Date={{.Date}}
)
