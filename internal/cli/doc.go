// Package cli implements the logcore command line tool.
package cli
