// Package version records the identity of the build for use in window titles
// and log banners
package version

import (
	"fmt"
	"runtime/debug"
)

// The name to use when referring to the application
const ApplicationName = "Advance"

// revision is the vcs revision the program was built from, suffixed with
// "+dirty" if the source had uncommitted changes. if there is no vcs
// information, for example when running with "go run .", it is "local"
var revision string

// Revision returns the vcs revision of the build
func Revision() string {
	return revision
}

// Title returns a string suitable for use in a window title. the application
// name followed by the build revision
func Title() string {
	return fmt.Sprintf("%s (%s)", ApplicationName, revision)
}

func init() {
	revision = "local"

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}

	var modified bool
	for _, v := range info.Settings {
		switch v.Key {
		case "vcs.revision":
			revision = v.Value
		case "vcs.modified":
			modified = v.Value == "true"
		}
	}

	if modified && revision != "local" {
		revision = fmt.Sprintf("%s+dirty", revision)
	}
}
