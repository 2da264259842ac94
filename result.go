package logname

// Status is the outcome of a logname invocation.
type Status int

const (
	Success Status = iota
	Failure
)

func (s Status) String() string {
	if s == Success {
		return "success"
	}
	return "failure"
}

// Result is the outcome of Run. The zero value is a success.
type Result struct {
	Status Status
	// Err is the first failure recorded, if any.
	Err error
}

// Failed reports whether a failure has been recorded.
func (r Result) Failed() bool { return r.Status == Failure }

// ExitCode maps the result onto EXIT_SUCCESS or EXIT_FAILURE.
func (r Result) ExitCode() int {
	if r.Failed() {
		return 1
	}
	return 0
}

// fail records err unless an earlier failure is already present.
func (r Result) fail(err error) Result {
	if r.Failed() {
		return r
	}
	return Result{Status: Failure, Err: err}
}
