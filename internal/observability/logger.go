package observability

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// Logging goes to a file: stdout belongs to the TUI.
var logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

func Logger() *slog.Logger {
	return logger
}

// Setup points the global logger at prism.log under the user config dir.
// On any failure the logger stays discarded; the app works without logs.
func Setup() {
	configDir, err := os.UserConfigDir()
	if err != nil {
		homeDir, herr := os.UserHomeDir()
		if herr != nil {
			return
		}
		configDir = filepath.Join(homeDir, ".config")
	}

	dir := filepath.Join(configDir, "prism")
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return
	}

	f, err := os.OpenFile(filepath.Join(dir, "prism.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return
	}
	logger = slog.New(slog.NewJSONHandler(f, nil))
}
