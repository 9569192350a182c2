// Package open launches URLs with the system's default handler.
package open

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/marquee-cli/marquee/constant"
)

var ErrNoTrailer = errors.New("no trailer to open")

// Run opens input and waits for the handler to exit.
func Run(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", constant.Current())
	}

	return cmd.Run()
}

// Start opens input without waiting.
func Start(input string) error {
	cmd, ok := command(input)
	if !ok {
		return fmt.Errorf("unsupported OS: %s", constant.Current())
	}

	return cmd.Start()
}

// TrailerURL is the YouTube watch page for a trailer key.
func TrailerURL(key string) string {
	return constant.YouTubeWatch + key
}

// Trailer opens the YouTube page of key in the background.
func Trailer(key string) error {
	if key == "" {
		return ErrNoTrailer
	}

	return Start(TrailerURL(key))
}

func command(input string) (*exec.Cmd, bool) {
	switch constant.Current() {
	case constant.Windows:
		rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
		return exec.Command(rundll, "url.dll,FileProtocolHandler", input), true
	case constant.Darwin:
		return exec.Command("open", input), true
	case constant.Linux:
		return exec.Command("xdg-open", input), true
	case constant.Android:
		return exec.Command("termux-open", input), true
	default:
		return nil, false
	}
}
