// Package logger re-exports the shared structured logger so internal
// packages import a single path.
package logger

import (
	pkglogger "github.com/Bparsons0904/goLogger"
)

type Logger = pkglogger.Logger

var (
	New                = pkglogger.New
	ContextWithTraceID = pkglogger.ContextWithTraceID
	TraceIDFromContext = pkglogger.TraceIDFromContext
)
