package s2proj

import (
	"fmt"
	"io"
	"runtime/debug"
	"strconv"
)

// Set at build time via `-ldflags "-X 'github.com/doismellburning/s2proj/src.S2PROJ_VERSION=X'"`
var S2PROJ_VERSION string

func getBuildSettingOrDefault(bi *debug.BuildInfo, key string, defaultValue string) string {
	if bi == nil {
		return defaultValue
	}

	for _, bs := range bi.Settings {
		if bs.Key == key {
			return bs.Value
		}
	}

	return defaultValue
}

// VersionString describes the running binary, e.g. for ll2merc --version.
func VersionString(tool string) string {
	var buildInfo, _ = debug.ReadBuildInfo()

	var buildTimeStr = getBuildSettingOrDefault(buildInfo, "vcs.time", "UNKNOWN")

	var (
		buildCommit               = getBuildSettingOrDefault(buildInfo, "vcs.revision", "UNKNOWN")
		buildDirtyStr             = getBuildSettingOrDefault(buildInfo, "vcs.modified", "INVALID")
		buildDirty, buildDirtyErr = strconv.ParseBool(buildDirtyStr)
	)

	if buildDirty {
		buildCommit += "-DIRTY"
	} else if buildDirtyErr != nil {
		buildCommit += "-UNKNOWNDIRTY"
	}

	var version = S2PROJ_VERSION
	if version == "" {
		version = "!UNKNOWN!"
	}

	return fmt.Sprintf("%s - s2proj version %s (revision %s, built at %s)", tool, version, buildCommit, buildTimeStr)
}

func printVersion(w io.Writer, tool string) {
	fmt.Fprintln(w, VersionString(tool))
}
