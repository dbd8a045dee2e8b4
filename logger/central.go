// Package logger is the central log for the application. All packages that
// want to record information for the user, without interrupting whatever the
// user is doing, should use this package.
package logger

import "io"

// Permission implementations indicate whether the environment making a log
// request is allowed to create new log entries
type Permission interface {
	AllowLogging() bool
}

type allow struct{}

func (_ allow) AllowLogging() bool {
	return true
}

// Allow indicates that the logging request should be allowed
var Allow Permission = allow{}

// only allowing one central log for the entire application. there's no need
// to allow more than one log
var central *logger

// maximum number of entries in the central logger
const maxCentral = 256

func init() {
	central = newLogger(maxCentral)
}

// Log adds an entry to the central logger
func Log(perm Permission, tag, detail string) {
	if perm == Allow || perm.AllowLogging() {
		central.log(tag, detail)
	}
}

// Logf adds a formatted entry to the central logger
func Logf(perm Permission, tag, detail string, args ...interface{}) {
	if perm == Allow || perm.AllowLogging() {
		central.logf(tag, detail, args...)
	}
}

// Clear all entries from the central logger
func Clear() {
	central.clear()
}

// Write the contents of the central logger to the io.Writer
func Write(output io.Writer) {
	central.write(output)
}

// Tail writes the last N entries in the central logger to the io.Writer. A
// negative number writes the entire log
func Tail(output io.Writer, number int) {
	central.tail(output, number)
}

// SetEcho prints entries to the io.Writer as they are logged. A nil writer
// turns the echo off
func SetEcho(output io.Writer, writeRecent bool) {
	central.setEcho(output, writeRecent)
}
