// Package delivery hands generated share content to the local desktop:
// the clipboard or the system URL handler.
package delivery

import (
	"fmt"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// Clipboard copies text for the user to paste elsewhere.
// Implementations are best-effort; copied is false when no clipboard exists.
type Clipboard interface {
	Copy(text string) (copied bool, err error)
}

// Opener opens a URL in the user's browser or the app registered for it.
type Opener interface {
	Open(url string) error
}

// clipboardWriteAll is a package-level variable to allow mocking in tests.
var clipboardWriteAll = clipboard.WriteAll

// SystemClipboard writes to the OS clipboard.
type SystemClipboard struct{}

// Copy writes text to the OS clipboard.
func (SystemClipboard) Copy(text string) (bool, error) {
	if clipboard.Unsupported {
		return false, nil
	}
	if err := clipboardWriteAll(text); err != nil {
		return false, fmt.Errorf("failed to write clipboard: %w", err)
	}
	return true, nil
}

// commandFor is a package-level variable to allow mocking in tests.
var commandFor = openCommand

// SystemOpener launches the platform's default URL handler.
type SystemOpener struct{}

// Open starts the handler and does not wait for it to exit.
func (SystemOpener) Open(url string) error {
	if url == "" {
		return fmt.Errorf("no URL to open")
	}
	cmd := commandFor(runtime.GOOS, url)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to open %s: %w", url, err)
	}
	return nil
}

func openCommand(goos, url string) *exec.Cmd {
	switch goos {
	case "windows":
		return exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	case "darwin":
		return exec.Command("open", url)
	default:
		return exec.Command("xdg-open", url)
	}
}
