/*
Package kafkaex holds package-level settings for a Kafka client: the
Logger it logs through, a PanicHandler hook, and the MaxRequestSize and
MaxResponseSize limits.

The package contains no wire-protocol codec, no broker connections and no
broker-worker: there is no NewWorker and there are no request or response
types, so nothing in it talks to a Kafka cluster.
*/
package kafkaex

import (
	"io"
	"log"
)

// Logger is the instance of a StdLogger interface reserved for kafkaex log
// output; no code in the package writes to it. By default it is set to
// discard all log messages, but you can set it to redirect wherever you want.
var Logger StdLogger = log.New(io.Discard, "[kafkaex] ", log.LstdFlags)

// StdLogger is used to log messages.
type StdLogger interface {
	Print(v ...interface{})
	Printf(format string, v ...interface{})
	Println(v ...interface{})
}

// PanicHandler is a hook for recovering from panics. Defaults to nil. No
// code in the package calls it or starts goroutines of its own.
var PanicHandler func(interface{})

// MaxRequestSize is the maximum request size (in bytes), 100 MiB by
// default. No code in the package reads it or enforces it.
var MaxRequestSize int32 = 100 * 1024 * 1024

// MaxResponseSize is the maximum response size (in bytes), 100 MiB by
// default. No code in the package reads it or enforces it.
var MaxResponseSize int32 = 100 * 1024 * 1024
