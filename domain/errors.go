package domain

import "errors"

var (
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput       = errors.New("Given Param is not valid")
	ErrInvalidNumberFormat = errors.New("invalid number format")
	ErrInvalidAddress      = errors.New("Invalid address")
	ErrInvalidSignature    = errors.New("Invalid signature")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")

	// ErrStoreUnavailable wraps any failure of the off-chain listing store
	ErrStoreUnavailable = errors.New("listing store unavailable")
	// ErrChainReadFailure wraps rpc failures and timeouts of on-chain reads
	ErrChainReadFailure = errors.New("chain read failure")
	// ErrPreconditionFailed is returned before any transaction is submitted
	ErrPreconditionFailed = errors.New("precondition failed")
	// ErrTransactionFailed means the transaction was rejected, reverted or not confirmed
	ErrTransactionFailed = errors.New("transaction failed")
	// ErrListingNotFound is the oracle's answer for an id that was never created
	ErrListingNotFound = errors.New("on-chain listing not found")
	// ErrInvalidStatusTransition means the listing already settled in another terminal status
	ErrInvalidStatusTransition = errors.New("invalid listing status transition")
)
