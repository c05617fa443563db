// Package build reads build metadata injected at link time, e.g.
//
//	go build -ldflags "-X main.buildInfo=$(cat build.json)"
package build

import (
	"encoding/json"
	"log/slog"
	"strings"
)

// Info is the metadata recorded by the release build.
type Info struct {
	Version   string `json:"version"`
	GitCommit string `json:"git_commit"` //nolint:tagliatelle
	GitBranch string `json:"git_branch"` //nolint:tagliatelle
	BuildTime string `json:"build_time"` //nolint:tagliatelle
	GoVersion string `json:"go_version"` //nolint:tagliatelle
}

// Parse deserializes a JSON string into build Info.
// Returns (nil, false) if the input is empty, "{}", or fails to parse.
func Parse(js string) (*Info, bool) {
	js = strings.TrimSpace(js)
	if js == "" || js == "{}" {
		return nil, false
	}

	var info Info

	if err := json.Unmarshal([]byte(js), &info); err != nil {
		slog.Warn("Failed to parse build info from JSON",
			"data", js,
			"error", err)

		return nil, false
	}

	return &info, true
}

// String renders the info on one line, e.g. "v1.2.0 (abc123, 2025-10-05)".
// A nil Info reads as "dev".
func (i *Info) String() string {
	if i == nil {
		return "dev"
	}

	version := i.Version
	if version == "" {
		version = "dev"
	}

	var details []string

	for _, s := range []string{i.GitCommit, i.BuildTime} {
		if s != "" {
			details = append(details, s)
		}
	}

	if len(details) == 0 {
		return version
	}

	return version + " (" + strings.Join(details, ", ") + ")"
}
