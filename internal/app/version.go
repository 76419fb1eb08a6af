package app

import "fmt"

// Set with -ldflags "-X github.com/heartmarshall/vitalog-backend/internal/app.Version=v1.4.0".
var (
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version   string `json:"version"    yaml:"version"`
	Commit    string `json:"commit"     yaml:"commit"`
	BuildTime string `json:"build_time" yaml:"build_time"`
}

// Build returns the values stamped at link time.
func Build() BuildInfo {
	return BuildInfo{Version: Version, Commit: Commit, BuildTime: BuildTime}
}

func (b BuildInfo) String() string {
	return fmt.Sprintf("%s (commit %s, built %s)", b.Version, b.Commit, b.BuildTime)
}

// BuildVersion is Build().String().
func BuildVersion() string { return Build().String() }
