/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package version provides version information for the composetokens CLI.
package version

import (
	"fmt"
	"runtime/debug"
)

var (
	// Version information, set at build time via ldflags
	Version   = "dev"
	GitCommit = "unknown"
	BuildTime = "unknown"
)

// build holds what the toolchain stamped into the binary.
type build struct {
	module   string
	revision string
	time     string
	modified bool
	goVer    string
}

func readBuild() build {
	var b build
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return b
	}
	b.goVer = info.GoVersion
	if info.Main.Version != "(devel)" {
		b.module = info.Main.Version
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			b.revision = s.Value
		case "vcs.time":
			b.time = s.Value
		case "vcs.modified":
			b.modified = s.Value == "true"
		}
	}
	return b
}

// Get returns the version string: the ldflags value, else the module
// version, else a short VCS revision, else "dev".
func Get() string {
	return resolve(readBuild())
}

func resolve(b build) string {
	switch {
	case Version != "dev":
		return Version
	case b.module != "":
		return b.module
	case b.revision != "":
		v := "dev-" + short(b.revision)
		if b.modified {
			v += "-dirty"
		}
		return v
	default:
		return "dev"
	}
}

// Full returns the version with its commit, when known.
func Full() string {
	if commit := commit(readBuild()); commit != "" {
		return fmt.Sprintf("%s (commit: %s)", Get(), short(commit))
	}
	return Get()
}

// Info returns detailed build information.
func Info() map[string]string {
	b := readBuild()
	built := BuildTime
	if built == "unknown" && b.time != "" {
		built = b.time
	}
	return map[string]string{
		"version":   resolve(b),
		"gitCommit": commit(b),
		"buildTime": built,
		"goVersion": b.goVer,
	}
}

func commit(b build) string {
	if GitCommit != "unknown" {
		return GitCommit
	}
	return b.revision
}

func short(rev string) string {
	if len(rev) > 7 {
		return rev[:7]
	}
	return rev
}
