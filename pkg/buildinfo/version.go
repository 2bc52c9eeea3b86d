// Package buildinfo holds the version stamped into the floatpos binary.
//
// Release builds set the variables with ldflags:
//
//	go build -ldflags "-X github.com/matzehuels/floatpos/pkg/buildinfo.Version=v0.3.0 \
//	    -X github.com/matzehuels/floatpos/pkg/buildinfo.Commit=$(git rev-parse --short HEAD) \
//	    -X github.com/matzehuels/floatpos/pkg/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)" ./cmd/floatpos
package buildinfo

import "fmt"

var (
	// Version is the release tag, "dev" for local builds.
	Version = "dev"

	// Commit is the git commit the binary was built from.
	Commit = "none"

	// Date is the UTC build time.
	Date = "unknown"
)

// Short returns the version with the commit appended for dev builds.
func Short() string {
	if Version == "dev" && Commit != "none" {
		return fmt.Sprintf("dev+%s", Commit)
	}
	return Version
}

// Template returns the cobra --version template.
func Template() string {
	return fmt.Sprintf("{{.Name}} %s\ncommit: %s\nbuilt: %s\n", Short(), Commit, Date)
}
