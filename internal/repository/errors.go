package repository

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	"gorm.io/gorm"
)

var (
	ErrNilMessage       = errors.New("message is nil")
	ErrAlreadyPersisted = errors.New("message already has an id")
)

// Kind narrows down what went wrong inside a StorageError.
type Kind int

const (
	KindBackend Kind = iota
	KindUnavailable
	KindConstraint
	KindInvalidRecord
)

func (k Kind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindConstraint:
		return "constraint"
	case KindInvalidRecord:
		return "invalid record"
	default:
		return "backend"
	}
}

// StorageError is returned by every MessageStore operation that fails.
// The cause is kept intact and reachable through errors.Is and errors.As.
type StorageError struct {
	Op   string
	Kind Kind
	Err  error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %s: %v", e.Op, e.Kind, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err carries a StorageError.
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// KindOf returns the kind of the StorageError inside err, or KindBackend.
func KindOf(err error) Kind {
	var se *StorageError
	if errors.As(err, &se) {
		return se.Kind
	}
	return KindBackend
}

func newStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Kind: classify(err), Err: err}
}

func classify(err error) Kind {
	var netErr net.Error

	switch {
	case errors.Is(err, ErrNilMessage):
		return KindInvalidRecord
	case errors.Is(err, ErrAlreadyPersisted),
		errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return KindConstraint
	case errors.Is(err, driver.ErrBadConn),
		errors.Is(err, sql.ErrConnDone),
		errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded),
		errors.As(err, &netErr):
		return KindUnavailable
	default:
		return KindBackend
	}
}
