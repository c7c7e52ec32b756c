package errors

// Process exit codes, following the grep convention.
const (
	// ExitMatch means at least one line matched.
	ExitMatch = 0
	// ExitNoMatch means the run completed but nothing matched.
	ExitNoMatch = 1
	// ExitError means the run failed.
	ExitError = 2
)

// ExitCode picks the process exit code for a finished run.
func ExitCode(matched bool, err error) int {
	if err != nil {
		return ExitError
	}
	if matched {
		return ExitMatch
	}
	return ExitNoMatch
}
