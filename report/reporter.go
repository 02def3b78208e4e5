package report

import "sync"

// Reporter is responsible for reporting errors, warnings, and other kinds of
// messages to the user during program execution.  The reporter respects the set
// log level and is synchronized: its methods can be safely called from multiple
// goroutines.
type Reporter struct {
	// The mutex used to synchonize different error method calls.
	m *sync.Mutex

	// The selected log level of the reporter.  This must be one of the
	// enumerated log levels below.
	logLevel int

	// The number of errors detected so far.
	errorCount int

	// The compile errors recorded so far, in report order.
	errors []*Diagnostic

	// The compile warnings recorded so far, in report order.
	warnings []*Diagnostic
}

// Diagnostic is one recorded compile error or warning.
type Diagnostic struct {
	// The representative path of the offending file.
	ReprPath string

	// The span of the offending source text.  May be nil.
	Span *TextSpan

	// The diagnostic message.
	Message string
}

// Enumeration of the different possible log levels.
const (
	LogLevelSilent  = iota // Displays no output.
	LogLevelError          // Displays only errors to the user.
	LogLevelWarn           // Displays only warnings and errors to the user.
	LogLevelVerbose        // Displays all compilation messages to the user (default).
)

// rep is the global reporter instance.
var rep *Reporter

// InitReporter initializes the global error reporter to the given log level. If
// the reporter has already been initialized, this function does nothing.
func InitReporter(logLevel int) {
	if rep == nil {
		rep = &Reporter{
			m:        &sync.Mutex{},
			logLevel: logLevel,
		}
	}
}

// ShouldProceed returns whether compilation should proceed to its next phase:
// ie. whether no errors have been detected so far.
func ShouldProceed() bool {
	return rep.errorCount == 0
}

// ErrorCount returns the number of errors detected so far.
func ErrorCount() int {
	return rep.errorCount
}

// Diagnostics returns all compile errors recorded so far, in report order.
func Diagnostics() []*Diagnostic {
	return rep.errors
}

// Warnings returns all compile warnings recorded so far, in report order.
func Warnings() []*Diagnostic {
	return rep.warnings
}
