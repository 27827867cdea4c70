package utils

import (
	"fmt"
	"os/exec"
	"runtime"
)

// browserCommand is swapped in tests
var browserCommand = func(name string, args ...string) error {
	return exec.Command(name, args...).Start()
}

// OpenBrowser opens the specified URL in the user's default browser
func OpenBrowser(url string) error {
	var err error

	switch runtime.GOOS {
	case "linux":
		err = browserCommand("xdg-open", url)
	case "windows":
		err = browserCommand("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		err = browserCommand("open", url)
	default:
		return fmt.Errorf("unsupported platform %s, please open %s manually", runtime.GOOS, url)
	}

	if err != nil {
		return fmt.Errorf("failed to open browser, please open %s manually: %w", url, err)
	}
	return nil
}
