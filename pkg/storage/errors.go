package storage

import "errors"

// Sentinel errors shared by all storage implementations.
var (
	// ErrAlreadyInTx signals a Begin while a transaction is already open on
	// the handle.
	ErrAlreadyInTx = errors.New("storage: already in a transaction")
	// ErrNotInTx signals a Commit, Rollback or row-lock helper used outside
	// of a transaction.
	ErrNotInTx = errors.New("storage: not in a transaction")
)
