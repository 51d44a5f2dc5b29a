package exec

// ExitStatus is the observed outcome of a finished process. Unknown reports that the runtime never saw an exit code,
// for example because the process could not be spawned or was killed before reporting one. Code is only meaningful
// when Unknown is false; this keeps "succeeded", "failed with code N", and "did not run" distinguishable without a
// magic number.
type ExitStatus struct {
	Code    int
	Unknown bool
}

// Exited returns the status of a process that reported the given exit code.
func Exited(code int) ExitStatus {
	return ExitStatus{Code: code}
}

// UnknownStatus is the sentinel for a process that never produced an exit code.
var UnknownStatus = ExitStatus{Unknown: true}

// Success reports whether the process completed with exit code 0.
func (s ExitStatus) Success() bool {
	return !s.Unknown && s.Code == 0
}
