// Package store persists accounts, jobs and progress records behind one
// contract with two interchangeable backends: a relational database and a
// flat JSON file. Callers observe identical entity shapes, identical list
// ordering (insertion order) and identical error taxonomy either way.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/career-navigator/apiserver/types"
)

var (
	// ErrNotFound is returned when a record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEmail is returned when creating an account whose
	// normalized email is already registered.
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUnavailable is returned for any backend fault: unreachable or
	// locked medium, invalid path, corrupt file, engine errors. Its
	// message never carries backend internals.
	ErrUnavailable = errors.New("database operation failed")
)

// Store is the storage provider contract shared by all backends.
type Store interface {
	// CreateAccount persists a new account. The duplicate-email check and
	// the insert are atomic with respect to concurrent creators.
	CreateAccount(ctx context.Context, acct types.Account) (types.Account, error)
	GetAccountByEmail(ctx context.Context, email string) (types.Account, error)
	GetAccountByID(ctx context.Context, id string) (types.Account, error)

	CreateJob(ctx context.Context, job types.Job) (types.Job, error)
	ListJobs(ctx context.Context, ownerID string) ([]types.Job, error)

	CreateProgress(ctx context.Context, item types.Progress) (types.Progress, error)
	ListProgress(ctx context.Context, ownerID string) ([]types.Progress, error)

	Close() error
}

// unavailable wraps a backend fault so callers match ErrUnavailable while
// the root cause stays available for logging.
func unavailable(err error) error {
	return fmt.Errorf("%w: %v", ErrUnavailable, err)
}
