package figure

import "log/slog"

// Logger receives notable events of the geometry engine, such as skipped coordinates or anchor
// fallbacks. It discards everything by default.
var Logger = slog.New(slog.DiscardHandler)

// SetLogger sets the logger, nil restores the default that discards everything.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = slog.New(slog.DiscardHandler)
	}
	Logger = l
}
