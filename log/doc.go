// Package log provides structured logging for iskierka built on [log/slog].
//
// It extends slog with a Trace level below Debug, selectable text/JSON output
// formats, optional ANSI-colorized pretty printing, and a package-level
// default logger configured with functional options:
//
//	log.Config(
//	    log.WithLevel(log.LevelDebug),
//	    log.WithFormat(log.FormatText),
//	)
//	log.Debug("lexicon sealed", slog.Int("variables", n))
//
// A zero-valued [Logger] is valid and discards all messages, which lets the
// grammar engine accept an optional logger without nil checks.
package log
