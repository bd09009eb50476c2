package service

import "log/slog"

// Notifier receives user-facing success/failure messages from store
// operations. It is informational only — store correctness never depends
// on it. The presentation layer supplies its own implementation; the
// default logs through slog.
type Notifier interface {
	Success(title, message string)
	Error(title, message string)
}

// LogNotifier is the default Notifier, writing notifications to slog.
type LogNotifier struct{}

func (LogNotifier) Success(title, message string) {
	slog.Info("notification", "title", title, "message", message)
}

func (LogNotifier) Error(title, message string) {
	slog.Warn("notification", "title", title, "message", message)
}
