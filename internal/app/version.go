package app

import (
	"log/slog"
	"runtime/debug"
)

// Set with -ldflags "-X github.com/heartmarshall/todo-backend/internal/app.Version=...".
var (
	Version   = "dev"
	Commit    = ""
	BuildTime = ""
)

// buildAttrs describes the running binary for the startup log. Without
// ldflags the commit falls back to the VCS stamp the toolchain embeds.
func buildAttrs() slog.Attr {
	commit, built := Commit, BuildTime
	if info, ok := debug.ReadBuildInfo(); ok {
		for _, s := range info.Settings {
			switch {
			case s.Key == "vcs.revision" && commit == "":
				commit = s.Value
			case s.Key == "vcs.time" && built == "":
				built = s.Value
			}
		}
	}
	if commit == "" {
		commit = "unknown"
	}
	if built == "" {
		built = "unknown"
	}

	return slog.Group("build",
		slog.String("version", Version),
		slog.String("commit", commit),
		slog.String("built_at", built),
	)
}
