package handler

import (
	"net/http"
	"runtime"
	"runtime/debug"
)

// VersionInfo contains version and build information
type VersionInfo struct {
	Version   string `json:"version"`
	GoVersion string `json:"go_version"`
	BuildTime string `json:"build_time,omitempty"`
	GitCommit string `json:"git_commit,omitempty"`
	Modified  bool   `json:"modified,omitempty"`
}

// Build-time variables, injected via -ldflags "-X". They win over configuration and VCS stamps.
var (
	Version   string
	BuildTime string
	GitCommit string
)

// HandleVersion returns version information about the application
// @Summary Build information
// @Tags health
// @Produce json
// @Success 200 {object} VersionInfo
// @Router /version [get]
func HandleVersion(configured string) http.HandlerFunc {
	info := buildInfo(configured, debug.ReadBuildInfo)
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, info)
	}
}

// buildInfo resolves each field from ldflags, then the VCS stamp in the binary, then configured.
func buildInfo(configured string, read func() (*debug.BuildInfo, bool)) VersionInfo {
	info := VersionInfo{
		Version:   configured,
		GoVersion: runtime.Version(),
		BuildTime: BuildTime,
		GitCommit: GitCommit,
	}
	if Version != "" {
		info.Version = Version
	}

	bi, ok := read()
	if !ok {
		return info
	}
	for _, s := range bi.Settings {
		switch s.Key {
		case "vcs.revision":
			if info.GitCommit == "" {
				info.GitCommit = s.Value
			}
		case "vcs.time":
			if info.BuildTime == "" {
				info.BuildTime = s.Value
			}
		case "vcs.modified":
			info.Modified = s.Value == "true"
		}
	}
	return info
}
