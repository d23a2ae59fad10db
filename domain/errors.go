package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// ErrInvalidInput is returned by precondition checks, before any network call is made
	ErrInvalidInput = errors.New("invalid input")
	// ErrSizeExceeded is returned when an upload payload is over the configured ceiling
	ErrSizeExceeded = errors.New("file size exceeded")
	// ErrUploadFailed wraps remote errors from the pinning service
	ErrUploadFailed = errors.New("upload failed")
	// ErrInvalidMetadata is returned when a metadata document fails validation
	ErrInvalidMetadata = errors.New("invalid metadata")
	// ErrNoWalletConnected is returned when a write is requested without a signing identity
	ErrNoWalletConnected = errors.New("no wallet connected")
	// ErrSubmissionRejected is returned when the network refuses a transaction before mining it
	ErrSubmissionRejected = errors.New("transaction submission rejected")
	// ErrTransactionReverted is returned when a mined transaction was rejected by the contract.
	// Distinct from ErrSubmissionRejected since gas was already spent.
	ErrTransactionReverted = errors.New("transaction reverted")
	// ErrPaginationFailure is returned when a cursor walk fails or exceeds the page cap
	ErrPaginationFailure = errors.New("pagination failure")
	// ErrSelectionLimitExceeded is returned when a comparison set is already at capacity
	ErrSelectionLimitExceeded = errors.New("selection limit exceeded")

	ErrUnsupportedSchema = errors.New("Unsupported schema")
	ErrUnsupportedChain  = errors.New("unsupported chain")
	ErrInvalidJsonFormat = errors.New("invalid JSON format")

	// request error
	ErrInvalidAddress = errors.New("Invalid address")
)
