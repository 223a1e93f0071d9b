package vault

import "fmt"

// Semantic version of the application. Suffix is cleared for tagged
// releases.
const (
	Maj    = 0
	Min    = 1
	Fix    = 0
	Suffix = "-dev"
)

// GitCommit is set at build time with
//
//	-ldflags "-X github.com/iov-one/vault.GitCommit=$(git rev-parse --short HEAD)"
var GitCommit = ""

// Version is the release followed by the commit when it is known.
func Version() string {
	v := fmt.Sprintf("v%d.%d.%d%s", Maj, Min, Fix, Suffix)
	if GitCommit == "" {
		return v
	}
	return v + " " + GitCommit
}
