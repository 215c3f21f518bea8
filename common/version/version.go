package version

import (
	"fmt"
	"runtime/debug"
)

var GitCommit string
var Version string

func SetDefaults() {
	build, infoOk := debug.ReadBuildInfo()

	if GitCommit == "" {
		GitCommit = ".dev"
		if infoOk {
			for _, setting := range build.Settings {
				if setting.Key == "vcs.revision" {
					GitCommit = setting.Value
					break
				}
			}
		}
	}

	if Version == "" {
		Version = "unknown"
	}
}

func Print() {
	SetDefaults()
	fmt.Println("Version: " + Version)
	fmt.Println("Commit: " + GitCommit)
}
