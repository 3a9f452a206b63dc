// Package domain provides defenitions of all entities.
package domain

import (
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"
)

var (
	// ErrAccountNotFound indicates that the account is not found.
	ErrAccountNotFound = errors.New("account not found")
	// ErrInvalidAmount indicates a zero, negative or sub-minimum amount.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInsufficientBalance indicates that the account does not have sufficient balance.
	ErrInsufficientBalance = errors.New("insufficient balance")
	// ErrLockTimeout indicates that the account lock was not acquired in time.
	ErrLockTimeout = errors.New("account lock timeout")
	// ErrPersistence indicates that the durable account state could not be updated.
	ErrPersistence = errors.New("persistence failure")
	// ErrAtomicity indicates that a transfer could not be committed as a whole.
	ErrAtomicity = errors.New("transfer atomicity violation")
)

// MinOutcome is the smallest amount that can be withdrawn from an account.
var MinOutcome = decimal.New(1, -2)

// Account holds the cash balance of a single customer account.
//
// The balance is mutated only through Income and Outcome, and only by the
// account manager while holding the account lock. Reads through Balance are
// safe at any time.
type Account struct {
	ID    int32
	Owner User

	lock chan struct{}

	mu      sync.RWMutex
	balance decimal.Decimal
}

// NewAccount returns an account with the given id, owner and opening balance.
func NewAccount(id int32, owner User, balance decimal.Decimal) *Account {
	return &Account{
		ID:      id,
		Owner:   owner,
		lock:    make(chan struct{}, 1),
		balance: balance,
	}
}

// Acquire takes the exclusive account lock, waiting at most timeout.
func (a *Account) Acquire(timeout time.Duration) error {
	t := time.NewTimer(timeout)
	defer t.Stop()

	select {
	case a.lock <- struct{}{}:
		return nil
	case <-t.C:
		return ErrLockTimeout
	}
}

// Release releases the lock taken by Acquire.
func (a *Account) Release() {
	<-a.lock
}

// Income credits the given amount. A non-positive amount is rejected and
// leaves the balance unchanged.
func (a *Account) Income(amount decimal.Decimal) error {
	if amount.LessThanOrEqual(decimal.Zero) {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	a.balance = a.balance.Add(amount)

	return nil
}

// Outcome debits the given amount. Amounts below MinOutcome are rejected,
// and the balance never goes negative.
func (a *Account) Outcome(amount decimal.Decimal) error {
	if amount.LessThan(MinOutcome) {
		return ErrInvalidAmount
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.balance.LessThan(amount) {
		return ErrInsufficientBalance
	}

	a.balance = a.balance.Sub(amount)

	return nil
}

// Balance returns the current balance.
func (a *Account) Balance() decimal.Decimal {
	a.mu.RLock()
	defer a.mu.RUnlock()

	return a.balance
}

// SetBalance overwrites the balance. It exists for compensating rollbacks
// after a failed persistence call and for loading account state.
func (a *Account) SetBalance(balance decimal.Decimal) {
	a.mu.Lock()
	a.balance = balance
	a.mu.Unlock()
}
