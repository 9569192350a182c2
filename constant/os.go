package constant

import "runtime"

// Platform is an operating system marquee has special handling for.
type Platform string

const (
	Windows Platform = "windows"
	Darwin  Platform = "darwin"
	Linux   Platform = "linux"
	Android Platform = "android"
)

// Current is the platform the binary was built for.
func Current() Platform {
	return Platform(runtime.GOOS)
}

// Unix reports whether p ships tput and a POSIX shell. Android counts when
// running under Termux.
func (p Platform) Unix() bool {
	switch p {
	case Linux, Darwin, Android:
		return true
	}

	return false
}
