// Package settings holds the process-wide logging configuration.
//
// A Settings value carries the severity threshold, the ordered
// HandlerList entries are dispatched to, and the default formatter given
// to handlers declared without one. Every accessor is safe for concurrent
// use. The threshold is an atomic, the formatter sits behind an RWMutex,
// and the handler list is copy-on-write so dispatch can iterate a snapshot
// while tests add and remove handlers.
//
// Invalid mutations fail fast: SetFormatter(nil) and Handlers().Add(nil)
// return an error and leave the state untouched.
//
// Settings are usually built from a YAML section:
//
//	severity: warn
//	formatter: text
//	handlers:
//	  - kind: console
//	    attributes: {target: stderr}
//	  - kind: file
//	    formatter: json
//	    attributes: {path: /var/log/app.log, max_size_mb: "50"}
//	  - kind: custom
//	    type: audit.Sink
//
// An empty or unparsable section yields the defaults (Error, text, one
// trace handler); a declaration that cannot be built, such as a custom
// handler without a type, is a configuration error.
//
// Default returns the process-wide instance, loaded once from
// LOGCORE_CONFIG and LOGCORE_SEVERITY. Tests swap it with SetDefault and
// restore the returned previous value on teardown.
package settings
