package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OperationKind names the kind of an audited operation.
type OperationKind string

// All audited operation kinds. A transfer produces one operation per leg.
const (
	OpDeposit     OperationKind = "deposit"
	OpWithdrawal  OperationKind = "withdrawal"
	OpTransferOut OperationKind = "transfer_out"
	OpTransferIn  OperationKind = "transfer_in"
	OpInterest    OperationKind = "interest"
	OpLogIn       OperationKind = "log_in"
	OpLogOut      OperationKind = "log_out"
)

// Operation is an immutable audit fact about a single money movement or
// session event. AccountID is nil for login and logout. Succeeded is
// attached by the history sink at logging time.
type Operation struct {
	ID          int64
	Kind        OperationKind
	User        User
	AccountID   *int32
	Amount      decimal.Decimal
	Description string
	CreatedAt   time.Time
	Succeeded   bool
}

// NewOperation returns an operation record for the given account.
func NewOperation(kind OperationKind, user User, accountID int32, amount decimal.Decimal, description string) Operation {
	return Operation{
		Kind:        kind,
		User:        user,
		AccountID:   &accountID,
		Amount:      amount,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}

// NewSessionOperation returns an operation record without an account, for
// login and logout events.
func NewSessionOperation(kind OperationKind, user User, description string) Operation {
	return Operation{
		Kind:        kind,
		User:        user,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	}
}
