package version

import "runtime/debug"

// Set at build time via ldflags.
var (
	Version = "dev"
	Commit  = "none"
)

func Full() string {
	return Version + " (" + Commit + ")"
}

func Short() string {
	return Version
}

// init backfills Version and Commit from build info when the ldflags
// defaults are still in place, so `go install` builds report something real.
func init() {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	if Version == "dev" && info.Main.Version != "" && info.Main.Version != "(devel)" {
		Version = info.Main.Version
	}
	for _, s := range info.Settings {
		if s.Key == "vcs.revision" && Commit == "none" && s.Value != "" {
			rev := s.Value
			if len(rev) > 7 {
				rev = rev[:7]
			}
			Commit = rev
		}
	}
}
