package storage

import "errors"

// Transaction state errors returned by storage implementations.
var (
	// ErrAlreadyInTx is returned by Begin on a handle that is already transactional.
	ErrAlreadyInTx = errors.New("already in tx")
	// ErrNotInTx is returned by Commit and Rollback outside of a transaction.
	ErrNotInTx = errors.New("not in tx")
	// ErrTxUnsupported is returned by backends that cannot isolate a transaction.
	ErrTxUnsupported = errors.New("transactions are not supported")
)
