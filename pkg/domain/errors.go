package domain

import "errors"

// Common domain errors
var (
	// ErrNotFound is returned when a requested resource is not found
	ErrNotFound = errors.New("resource not found")
	// ErrAlreadyExists is returned when trying to create a resource that already exists
	ErrAlreadyExists = errors.New("resource already exists")
	// ErrValidation is returned when input validation fails
	ErrValidation = errors.New("validation error")
	// ErrUnauthorized is returned when a user is not authorized to perform an action
	ErrUnauthorized = errors.New("unauthorized")
)

// Back-office errors. Every operation surfaces one of these instead of
// swallowing the failure or handing back an empty result.
var (
	// ErrClientNotFound is returned when client resolution requires an existing record
	ErrClientNotFound = errors.New("client not found")
	// ErrCompanyNotFound is returned when company resolution requires an existing record
	ErrCompanyNotFound = errors.New("company not found")
	// ErrEmployeeNotFound is returned when a token does not resolve to an active employee
	ErrEmployeeNotFound = errors.New("employee not found")
	// ErrInvalidCurrency is returned when a currency code has no catalog entry
	ErrInvalidCurrency = errors.New("invalid currency code")
	// ErrCardNotFound is returned when a card number matches no card
	ErrCardNotFound = errors.New("card not found")
	// ErrAccountNotFound is returned when an account number matches no account
	ErrAccountNotFound = errors.New("account not found")
	// ErrNotAccountOwner is returned when a client operates on an account they do not own
	ErrNotAccountOwner = errors.New("caller does not own the account")
	// ErrIncorrectCredentials is returned on a role mismatch or unusable token claims
	ErrIncorrectCredentials = errors.New("incorrect credentials")
	// ErrNullPageRequest is returned when a paginated operation lacks page parameters
	ErrNullPageRequest = errors.New("missing pagination parameters")
	// ErrCardDeactivated is returned when an operation targets a card in its terminal state
	ErrCardDeactivated = errors.New("card is deactivated")
	// ErrNumberExhausted is returned when unique number generation ran out of retries
	ErrNumberExhausted = errors.New("unique number generation retries exhausted")
)
