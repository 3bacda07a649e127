package inject

import (
	"log/slog"

	hook "github.com/robotn/gohook"
)

// WatchQuit blocks until the quit key is pressed anywhere on the system,
// then calls stop. Run it on its own goroutine; the control loop observes
// the stop cooperatively, once per iteration.
func WatchQuit(key string, stop func()) {
	if hook.AddEvents(key) {
		slog.Info("quit key pressed", "key", key)
		stop()
	}
}
