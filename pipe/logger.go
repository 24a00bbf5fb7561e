package pipe

// Logger provides a pluggable logging interface for stages.
// Implementations must be safe for concurrent use by multiple goroutines.
type Logger interface {
	// Verbose logs detailed diagnostic information.
	// Only logged when verbose mode is enabled.
	Verbose(format string, args ...any)

	// Info logs informational messages about normal operations.
	Info(format string, args ...any)

	// Error logs error messages.
	Error(format string, args ...any)
}

// runLogger prefixes every line with the short form of a run ID.
type runLogger struct {
	id   string
	next Logger
}

func newRunLogger(runID string, next Logger) Logger {
	if len(runID) > 8 {
		runID = runID[:8]
	}

	return runLogger{id: runID, next: next}
}

func (l runLogger) Verbose(format string, args ...any) {
	l.next.Verbose("[%s] "+format, l.with(args)...)
}

func (l runLogger) Info(format string, args ...any) {
	l.next.Info("[%s] "+format, l.with(args)...)
}

func (l runLogger) Error(format string, args ...any) {
	l.next.Error("[%s] "+format, l.with(args)...)
}

func (l runLogger) with(args []any) []any {
	return append([]any{l.id}, args...)
}
