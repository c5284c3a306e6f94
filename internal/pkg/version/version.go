package version

import (
	"runtime/debug"
)

// Set at build time with -ldflags "-X darwin-nic/internal/pkg/version.tag=v1.2.0".
var (
	tag    = ""
	commit = ""
	branch = ""
)

type gitInfo struct {
	Commit    string
	Branch    string
	Tag       string
	Dirty     bool
	GoVersion string
}

// GetGitInfo returns git metadata from ldflags, falling back to the VCS
// stamp the go toolchain embeds in the binary.
func GetGitInfo() gitInfo {
	info := gitInfo{Commit: commit, Branch: branch, Tag: tag}

	bi, ok := debug.ReadBuildInfo()
	if !ok {
		return withPlaceholders(info)
	}
	info.GoVersion = bi.GoVersion
	if info.Tag == "" && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Tag = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.Commit == "" {
				info.Commit = s.Value
			}
		case "vcs.modified":
			info.Dirty = s.Value == "true"
		}
	}
	return withPlaceholders(info)
}

func withPlaceholders(info gitInfo) gitInfo {
	if info.Tag == "" {
		info.Tag = "none"
	}
	if info.Commit == "" {
		info.Commit = "unknown"
	}
	if info.Branch == "" {
		info.Branch = "unknown"
	}
	return info
}
