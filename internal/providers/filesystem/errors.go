package filesystem

import (
	"errors"
	"fmt"
)

// Kind identifies which filesystem operation failed
type Kind int

const (
	KindList Kind = iota + 1
	KindCreate
	KindRead
	KindUpdate
	KindDelete
	KindSearch
)

// String returns the lowercase kind name, used as a metrics label
func (k Kind) String() string {
	switch k {
	case KindList:
		return "list"
	case KindCreate:
		return "create"
	case KindRead:
		return "read"
	case KindUpdate:
		return "update"
	case KindDelete:
		return "delete"
	case KindSearch:
		return "search"
	default:
		return "unknown"
	}
}

func (k Kind) action() string {
	switch k {
	case KindList:
		return "listing files and directories"
	case KindCreate:
		return "creating"
	case KindRead:
		return "reading file"
	case KindUpdate:
		return "updating file"
	case KindDelete:
		return "deleting file or directory"
	case KindSearch:
		return "searching files and directories"
	default:
		return "accessing filesystem"
	}
}

// OperationError wraps the OS error raised by a filesystem operation
type OperationError struct {
	Kind Kind
	Path string
	Err  error
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("error %s: %v", e.Kind.action(), e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

func newError(kind Kind, path string, err error) error {
	return &OperationError{Kind: kind, Path: path, Err: err}
}

// KindOf returns the kind carried by err, or 0 if err is not an OperationError
func KindOf(err error) Kind {
	var opErr *OperationError
	if errors.As(err, &opErr) {
		return opErr.Kind
	}
	return 0
}

// IsKind reports whether err is an OperationError of the given kind
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
