// Package core defines the value types shared across logcore.
//
// Severity is an ordered enumeration (Debug < Info < Warn < Error <
// Critical); gating compares ordinals, so an entry passes a threshold when
// its severity is equal to or greater than it.
//
// Entry is the immutable record of one log call: severity, the name of
// the subject type that emitted it, the rendered message and a timestamp.
// Entries are passed by value everywhere. Nothing in the framework keeps a
// pointer to an entry once the handler call returns.
package core
