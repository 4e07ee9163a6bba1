// Package logger is the public API of logcore. Most users only need to
// import this package.
//
// Loggers are obtained per subject type and cached, so the same type
// always yields the same *Logger:
//
//	var log = logger.For[Server]()
//	log.Info("listening on {0}", addr)
//
// Every leveled call first checks the severity threshold of the active
// settings. Calls below the threshold return before the message is
// formatted or an entry is built. Entries that pass are handed, in
// order, to every handler of settings.Handlers. A handler that returns
// false or panics is counted in settings.Stats and skipped; the caller
// never sees the failure.
//
// Messages use indexed placeholders. "{0}" is replaced with the first
// argument, "{{" and "}}" yield literal braces, and a placeholder without
// a matching argument is kept as written.
//
// A Profiler times a scoped operation:
//
//	err := log.Profile("import", func(p *logger.Profiler) error {
//	    p.Info("read {0} rows", n)
//	    return nil
//	})
//
// It logs "import START", each progress line as "[0.120s] import read 42
// rows", and "[0.250s] import FINISH" exactly once, even when fn panics.
//
// NewSlogHandler bridges log/slog onto a Logger.
package logger
