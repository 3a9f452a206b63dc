// Package interestoperator accrues periodic interest over accounts.
package interestoperator

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cashops/cash-bank/internal/domain"
	"github.com/cashops/cash-bank/pkg/configpkg"
)

// Repo provides data access layer interface needed by the interest operator.
//
//go:generate mockgen -source operator.go -destination operator_mock.go -package interestoperator
type Repo interface {
	GetUserByName(ctx context.Context, name string) (domain.User, error)
	ListAccounts(ctx context.Context) ([]*domain.Account, error)
}

// Crediter is the account manager surface used to credit interest. Accounts
// are resolved through it so the accrual basis is the same instance the
// credit lands on.
type Crediter interface {
	Account(ctx context.Context, id int32) (*domain.Account, error)
	PaymentIn(ctx context.Context, user domain.User, amount decimal.Decimal, description string, accountID int32) error
}

// Auth checks that the system principal may accrue interest.
type Auth interface {
	CanInvokeOperation(ctx context.Context, op domain.Operation, user domain.User) error
}

// History provides the audit sink interface needed by the interest operator.
type History interface {
	LogOperation(ctx context.Context, op domain.Operation, succeeded bool) error
}

const accrualDescription = "interest accrual"

// Operator credits interest = balance * rate once per account per accrual
// period. Rate, period and the system principal name come from
// configuration, never from constants at the call site.
type Operator struct {
	repo      Repo
	manager   Crediter
	auth      Auth
	history   History
	rate      decimal.Decimal
	period    time.Duration
	principal string

	now func() time.Time

	mu      sync.Mutex
	accrued map[int32]time.Time
}

// New returns an interest Operator configured from config. Missing or
// unparsable accrual settings are configuration errors.
func New(repo Repo, manager Crediter, auth Auth, history History, config configpkg.Config) (*Operator, error) {
	if repo == nil || manager == nil || auth == nil || history == nil {
		return nil, domain.ErrConfiguration
	}

	if config.SystemPrincipal == "" || config.InterestPeriod <= 0 {
		return nil, domain.ErrConfiguration
	}

	rate, err := decimal.NewFromString(config.InterestRate)
	if err != nil || rate.IsNegative() {
		return nil, domain.ErrConfiguration
	}

	return &Operator{
		repo:      repo,
		manager:   manager,
		auth:      auth,
		history:   history,
		rate:      rate,
		period:    config.InterestPeriod,
		principal: config.SystemPrincipal,
		now:       time.Now,
		accrued:   make(map[int32]time.Time),
	}, nil
}

// CreditInterest accrues interest on the given account, attributed to the
// system principal. Repeated calls within the same accrual period are
// no-ops.
func (o *Operator) CreditInterest(ctx context.Context, accountID int32) error {
	l := zerolog.Ctx(ctx)

	account, err := o.manager.Account(ctx, accountID)
	if err != nil {
		l.Error().Err(err).Int32("account_id", accountID).Msg("interest accrual target not found")
		return err
	}

	principal, err := o.repo.GetUserByName(ctx, o.principal)
	if err != nil {
		l.Error().Err(err).Str("principal", o.principal).Msg("system principal is not provisioned")
		return domain.ErrConfiguration
	}

	op := domain.NewOperation(domain.OpInterest, principal, account.ID, decimal.Zero, accrualDescription)
	if err := o.auth.CanInvokeOperation(ctx, op, principal); err != nil {
		return err
	}

	periodStart := o.now().UTC().Truncate(o.period)

	o.mu.Lock()
	last, done := o.accrued[account.ID]
	o.mu.Unlock()

	if done && !last.Before(periodStart) {
		l.Debug().Int32("account_id", account.ID).Msg("interest already accrued this period")
		return nil
	}

	interest := account.Balance().Mul(o.rate)
	op.Amount = interest

	if interest.LessThanOrEqual(decimal.Zero) {
		o.markAccrued(account.ID, periodStart)
		o.logStatus(ctx, op, true)

		return nil
	}

	err = o.manager.PaymentIn(ctx, principal, interest, accrualDescription, account.ID)
	o.logStatus(ctx, op, err == nil)

	if err != nil {
		return err
	}

	o.markAccrued(account.ID, periodStart)

	return nil
}

func (o *Operator) markAccrued(accountID int32, periodStart time.Time) {
	o.mu.Lock()
	o.accrued[accountID] = periodStart
	o.mu.Unlock()
}

func (o *Operator) logStatus(ctx context.Context, op domain.Operation, succeeded bool) {
	if err := o.history.LogOperation(ctx, op, succeeded); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to audit interest accrual")
	}
}
