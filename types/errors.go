package types

import (
	"fmt"
)

type Kind string

const (
	AuthError    Kind = "AuthError"
	FetchError   Kind = "FetchError"
	SubmitError  Kind = "SubmitError"
	ArchiveError Kind = "ArchiveError"
)

type Cause string

const (
	HTTP    Cause = "HTTP"
	Network Cause = "Network"
	Insert  Cause = "Insert"
	Delete  Cause = "Delete"
)

var (
	ErrAuth          = &Error{Kind: AuthError}
	ErrFetch         = &Error{Kind: FetchError}
	ErrSubmit        = &Error{Kind: SubmitError}
	ErrSubmitHTTP    = &Error{Kind: SubmitError, Cause: HTTP}
	ErrSubmitNetwork = &Error{Kind: SubmitError, Cause: Network}
	ErrArchive       = &Error{Kind: ArchiveError}
	ErrArchiveInsert = &Error{Kind: ArchiveError, Cause: Insert}
	ErrArchiveDelete = &Error{Kind: ArchiveError, Cause: Delete}
)

// Error is a run-terminating failure tagged with its category and, for submit and archive
// failures, the step that failed.
type Error struct {
	Kind  Kind
	Cause Cause
	Err   error
}

func NewError(kind Kind, cause Cause, err error) *Error {
	return &Error{
		Kind:  kind,
		Cause: cause,
		Err:   err,
	}
}

func (e *Error) Error() string {
	tag := string(e.Kind)
	if e.Cause != "" {
		tag = fmt.Sprintf("%v{%v}", e.Kind, e.Cause)
	}

	if e.Err != nil {
		return fmt.Sprintf("%v: %v", tag, e.Err)
	}

	return tag
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches on Kind and, if the target has one, on Cause so that errors.Is(err, ErrSubmit)
// matches any submit failure while errors.Is(err, ErrSubmitHTTP) matches only HTTP failures.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	if t.Kind != e.Kind {
		return false
	}

	return t.Cause == "" || t.Cause == e.Cause
}
