package launcher

import (
	"context"
	"fmt"
	"log"
	"os/exec"
	"runtime"

	"github.com/atotto/clipboard"
)

// WebLauncher opens a chat web page in the default browser with the prompt
// copied to the system clipboard, ready to paste
type WebLauncher struct {
	URL string

	copyText func(string) error
	openURL  func(ctx context.Context, url string) error
}

func NewWebLauncher(url string) *WebLauncher {
	return &WebLauncher{
		URL:      url,
		copyText: clipboard.WriteAll,
		openURL:  openBrowser,
	}
}

// Deliver copies text to the clipboard and opens the chat page. A clipboard
// failure is logged but not fatal: the browser still opens and the caller
// echoes the prompt so the user can paste it manually.
func (wl *WebLauncher) Deliver(ctx context.Context, text string, _ string) error {
	if err := wl.copyText(text); err != nil {
		log.Printf("Warning: could not copy prompt to clipboard: %v", err)
	} else {
		log.Printf("Prompt copied to system clipboard")
	}

	if err := wl.openURL(ctx, wl.URL); err != nil {
		return &DeliveryError{Target: "web", Err: fmt.Errorf("failed to open browser: %w", err)}
	}
	return nil
}

func openBrowser(ctx context.Context, url string) error {
	var name string
	var args []string
	switch runtime.GOOS {
	case "darwin":
		name = "open"
	case "windows":
		name = "rundll32"
		args = []string{"url.dll,FileProtocolHandler"}
	default:
		name = "xdg-open"
	}
	args = append(args, url)
	return exec.CommandContext(ctx, name, args...).Start()
}
