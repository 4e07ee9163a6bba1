// Package handler provides the Handler contract and the built-in sinks.
//
// A Handler owns exactly one formatter and exposes Write, which formats an
// entry, attempts delivery and returns whether it succeeded. Handlers
// report failure through that boolean; they do not panic and do not
// return errors to the logging call. The dispatcher in package logger
// still recovers panics so one misbehaving sink cannot affect the others.
//
// Built-in handlers:
//
//   - TraceHandler writes lines to stderr and always succeeds. It is the
//     zero-configuration default.
//   - MemoryHandler retains entries for tests and diagnostics.
//   - ConsoleHandler writes to stdout or any io.Writer, optionally through
//     a bounded async queue with per-severity OverflowPolicy.
//   - FileHandler appends to a file, with rotation handled by lumberjack.
//   - MailHandler sends entries as mails over SMTP.
//   - ZapHandler and HclogHandler forward into zap and hclog loggers.
//
// Configuration refers to handlers by kind. Register adds a kind and
// RegisterCustom adds a named custom type that declarations select with
// kind "custom"; New resolves a Declaration into a Handler.
package handler
