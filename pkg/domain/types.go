package domain

// Role is the caller role carried in a bearer token.
type Role string

const (
	RoleClient   Role = "client"
	RoleEmployee Role = "employee"
)

// AccountType enumerates the supported account products.
type AccountType string

const (
	AccountTypeStandard AccountType = "STANDARD"
	AccountTypeSavings  AccountType = "SAVINGS"
	AccountTypePension  AccountType = "PENSION"
)

// CardStatus enumerates card lifecycle states.
// Deactivated is terminal: no transition leaves it.
type CardStatus string

const (
	CardStatusActivated   CardStatus = "ACTIVATED"
	CardStatusBlocked     CardStatus = "BLOCKED"
	CardStatusDeactivated CardStatus = "DEACTIVATED"
)

// Valid reports whether s is a known card status.
func (s CardStatus) Valid() bool {
	switch s {
	case CardStatusActivated, CardStatusBlocked, CardStatusDeactivated:
		return true
	}
	return false
}

// ResolveOutcome tags the result of a find-or-create resolution so side
// effects stay auditable.
type ResolveOutcome string

const (
	ResolvedExisting ResolveOutcome = "existing"
	ResolvedCreated  ResolveOutcome = "created"
)

// LoanStatus enumerates loan request states.
type LoanStatus string

const (
	LoanStatusPending  LoanStatus = "PENDING"
	LoanStatusApproved LoanStatus = "APPROVED"
	LoanStatusRejected LoanStatus = "REJECTED"
)
