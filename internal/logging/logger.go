// Package logging is the central logging package of this helper. It defines the narrow logger contract that the
// business logic consumes and holds our zap-backed implementation of it.
package logging

// Escalation names whether a failure message may trip the host platform's automatic failure handling. Copado marks a
// job step as failed as soon as something is reported at error level, so callers that want to decide about fatality
// themselves report failures with KeepRunning and propagate an error instead.
type Escalation int

const (
	// KeepRunning reports the failure at a level the host ignores (info). The caller decides whether it is fatal.
	KeepRunning Escalation = iota

	// EscalateFailure reports the failure at error level, marking the surrounding job step as failed.
	EscalateFailure
)

// Logger is the leveled logging contract consumed by the business logic. It mirrors the five Copado log levels.
// Return values of the underlying sink are never consumed.
type Logger interface {
	Debugf(format string, a ...any)
	Progressf(format string, a ...any)
	Infof(format string, a ...any)
	Warnf(format string, a ...any)
	Errorf(format string, a ...any)

	// Failuref reports a failure with an explicit escalation decision, see Escalation.
	Failuref(escalation Escalation, format string, a ...any)
}
