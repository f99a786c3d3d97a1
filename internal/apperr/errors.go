package apperr

// NotComparableError marks the run-level recoverable condition: one or both
// sources produced no usable data, or the selected result sets share no
// benchmark names. The run ends with a diagnostic and no report files, but
// the process still exits successfully.
type NotComparableError struct {
	Message string
	Err     error
}

func (e *NotComparableError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *NotComparableError) Unwrap() error {
	return e.Err
}

func NewNotComparable(msg string) *NotComparableError {
	return &NotComparableError{Message: msg}
}

func NewNotComparableWrap(msg string, err error) *NotComparableError {
	return &NotComparableError{Message: msg, Err: err}
}
