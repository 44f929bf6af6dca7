// Package buildinfo carries version metadata stamped at link time, e.g.
//
//	go build -ldflags "-X github.com/aalvaropc/figgy/internal/buildinfo.Version=v0.1.0"
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ResolvedVersion prefers the stamped version, then the module version recorded by
// `go install`, then "dev".
func ResolvedVersion() string {
	if Version != "dev" && Version != "" {
		return Version
	}
	if bi, ok := debug.ReadBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return "dev"
}

func String() string {
	return fmt.Sprintf("figgy %s (commit=%s, date=%s)", ResolvedVersion(), Commit, Date)
}
