package Trees

import (
	"github.com/cockroachdb/errors"
)

// Status is the outcome of a mutation. The first four are successes; the rest
// describe why the tree was left untouched.
type Status byte

const (
	BecameRoot Status = iota
	Inserted
	Deleted
	Updated
	EmptyTree
	NotFound
	DuplicateID
	ParentNotFound
	InvalidLevel
	InvalidAge
)

var (
	ErrEmptyTree      = errors.New("tree empty")
	ErrNotFound       = errors.New("not found")
	ErrDuplicateID    = errors.New("duplicate id")
	ErrParentNotFound = errors.New("parent not found")
	ErrInvalidLevel   = errors.New("invalid level")
	ErrInvalidAge     = errors.New("invalid age")
)

var statusNames = [...]string{"became root", "inserted", "deleted", "updated", "tree empty", "not found", "duplicate id", "parent not found", "invalid level", "invalid age"}

// OK reports whether s is a success.
func (s Status) OK() bool {
	return s <= Updated
}

func (s Status) String() string {
	if int(s) < len(statusNames) {
		return statusNames[s]
	}
	return "unknown"
}

// Err is the sentinel error for a failure status, nil for a success.
func (s Status) Err() error {
	switch s {
	case EmptyTree:
		return ErrEmptyTree
	case NotFound:
		return ErrNotFound
	case DuplicateID:
		return ErrDuplicateID
	case ParentNotFound:
		return ErrParentNotFound
	case InvalidLevel:
		return ErrInvalidLevel
	case InvalidAge:
		return ErrInvalidAge
	}
	return nil
}

// StatusOf recovers the failure status from an error returned by a mutation.
// Returns (0, false) if err doesn't wrap one of the sentinels.
func StatusOf(err error) (Status, bool) {
	for s := EmptyTree; s <= InvalidAge; s++ {
		if errors.Is(err, s.Err()) {
			return s, true
		}
	}
	return 0, false
}

// fail builds the (Status, error) pair every failed mutation returns.
func fail(op string, key int, s Status) (Status, error) {
	return s, errors.Wrapf(s.Err(), "%s %d", op, key)
}
