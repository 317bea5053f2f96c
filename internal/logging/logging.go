// Package logging is the planner's single choke point for diagnostics.
//
// It keeps the shape of the teacher CCOM_planner's util package: a small
// ErrorPolicy enum plus PrintError/PrintLog/PrintVerbose wrapping the
// standard log package. The visualization file writer (DebugVis,
// SetupDebugWriter, PrintDebugVertex, ...) is not carried forward — this
// repository has no visualization front-end to feed.
package logging

import "log"

var Verbose = false

type ErrorPolicy int

const (
	IgnoreErr ErrorPolicy = iota
	LogErr
	ParseErr
	FatalErr
)

// PrintError logs a fatal error and terminates the process.
func PrintError(v ...interface{}) {
	log.Fatal(append([]interface{}{"steer error: "}, v...)...)
}

// PrintLog logs a message unconditionally.
func PrintLog(v ...interface{}) {
	log.Println(append([]interface{}{"steer:"}, v...)...)
}

// PrintVerbose logs a message only when Verbose is set.
func PrintVerbose(v ...interface{}) {
	if Verbose {
		PrintLog(v...)
	}
}

// HandleError dispatches err according to policy. A nil err is always a no-op.
func HandleError(err error, policy ErrorPolicy) {
	if err == nil {
		return
	}
	switch policy {
	case IgnoreErr:
	case LogErr:
		PrintLog("encountered an error:", err)
	case ParseErr:
		fallthrough
	case FatalErr:
		PrintError(err)
	}
}
