// Package accountmanager orchestrates validation, authorization, balance
// mutation, persistence and auditing of every account operation.
package accountmanager

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cashops/cash-bank/internal/domain"
)

// Repo provides data access layer interface needed by the account manager.
//
//go:generate mockgen -source service.go -destination service_mock.go -package accountmanager
type Repo interface {
	GetAccount(ctx context.Context, id int32) (*domain.Account, error)
	UpdateAccountBalance(ctx context.Context, account *domain.Account) error
}

// Auth provides the authorization and session interface needed by the
// account manager.
type Auth interface {
	CanInvokeOperation(ctx context.Context, op domain.Operation, user domain.User) error
	LogIn(ctx context.Context, username string, password []byte) (string, domain.Session, error)
	LogOut(ctx context.Context, username string) bool
}

// History provides the audit sink interface needed by the account manager.
type History interface {
	LogOperation(ctx context.Context, op domain.Operation, succeeded bool) error
	LogUnauthorized(ctx context.Context, op domain.Operation) error
}

// Service executes account operations. Each account is mutated under its
// own exclusive lock; a successful outcome always means the in-memory
// mutation and its persistence both succeeded.
type Service struct {
	repo        Repo
	auth        Auth
	history     History
	lockTimeout time.Duration

	mu       sync.Mutex
	accounts map[int32]*domain.Account
}

const defaultLockTimeout = 5 * time.Second

// New returns a fully wired account manager or an explicit configuration
// error, never an unusable nil.
func New(repo Repo, auth Auth, history History, lockTimeout time.Duration) (*Service, error) {
	if repo == nil || auth == nil || history == nil {
		return nil, domain.ErrConfiguration
	}

	if lockTimeout <= 0 {
		lockTimeout = defaultLockTimeout
	}

	return &Service{
		repo:        repo,
		auth:        auth,
		history:     history,
		lockTimeout: lockTimeout,
		accounts:    make(map[int32]*domain.Account),
	}, nil
}

// account returns the shared in-memory instance for the given account ID,
// loading it from the repo on first use. One instance per ID keeps the
// per-account lock meaningful across concurrent callers.
func (s *Service) account(ctx context.Context, id int32) (*domain.Account, error) {
	s.mu.Lock()
	if a, ok := s.accounts[id]; ok {
		s.mu.Unlock()
		return a, nil
	}
	s.mu.Unlock()

	a, err := s.repo.GetAccount(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if cached, ok := s.accounts[id]; ok {
		return cached, nil
	}

	s.accounts[id] = a

	return a, nil
}

// Account returns the shared in-memory instance for the given account ID.
// Collaborators operating on balances resolve accounts through here so
// their reads and the manager's writes target the same instance.
func (s *Service) Account(ctx context.Context, id int32) (*domain.Account, error) {
	return s.account(ctx, id)
}

// log appends an audit record. A failing audit write is surfaced in the
// logs but never overrides the operation outcome.
func (s *Service) log(ctx context.Context, op domain.Operation, succeeded bool) {
	if err := s.history.LogOperation(ctx, op, succeeded); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to audit operation")
	}
}

// PaymentIn credits the amount to the account. The caller must be
// authorized: the account owner, an admin, or the system principal.
func (s *Service) PaymentIn(ctx context.Context, user domain.User, amount decimal.Decimal, description string, accountID int32) error {
	l := zerolog.Ctx(ctx)
	op := domain.NewOperation(domain.OpDeposit, user, accountID, amount, description)

	if err := s.auth.CanInvokeOperation(ctx, op, user); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			if logErr := s.history.LogUnauthorized(ctx, op); logErr != nil {
				l.Error().Err(logErr).Msg("failed to audit unauthorized operation")
			}

			return err
		}

		l.Error().Err(err).Send()
		s.log(ctx, op, false)

		return err
	}

	if amount.LessThanOrEqual(decimal.Zero) {
		l.Info().Str("amount", amount.String()).Msg("deposit rejected: non-positive amount")
		s.log(ctx, op, false)

		return domain.ErrInvalidAmount
	}

	account, err := s.account(ctx, accountID)
	if err != nil {
		l.Info().Err(err).Int32("account_id", accountID).Send()
		s.log(ctx, op, false)

		return err
	}

	if err := account.Acquire(s.lockTimeout); err != nil {
		s.log(ctx, op, false)
		return err
	}
	defer account.Release()

	prev := account.Balance()

	if err := account.Income(amount); err != nil {
		s.log(ctx, op, false)
		return err
	}

	if err := s.repo.UpdateAccountBalance(ctx, account); err != nil {
		account.SetBalance(prev)
		l.Error().Err(err).Int32("account_id", accountID).Send()
		s.log(ctx, op, false)

		return domain.ErrPersistence
	}

	s.log(ctx, op, true)

	return nil
}

// PaymentOut debits the amount from the account. The caller must be
// authorized; the mutation result is never overwritten by the persistence
// result.
func (s *Service) PaymentOut(ctx context.Context, user domain.User, amount decimal.Decimal, description string, accountID int32) error {
	l := zerolog.Ctx(ctx)
	op := domain.NewOperation(domain.OpWithdrawal, user, accountID, amount, description)

	if err := s.auth.CanInvokeOperation(ctx, op, user); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			if logErr := s.history.LogUnauthorized(ctx, op); logErr != nil {
				l.Error().Err(logErr).Msg("failed to audit unauthorized operation")
			}

			return err
		}

		l.Error().Err(err).Send()
		s.log(ctx, op, false)

		return err
	}

	account, err := s.account(ctx, accountID)
	if err != nil {
		l.Info().Err(err).Int32("account_id", accountID).Send()
		s.log(ctx, op, false)

		return err
	}

	if err := account.Acquire(s.lockTimeout); err != nil {
		s.log(ctx, op, false)
		return err
	}
	defer account.Release()

	prev := account.Balance()

	if err := account.Outcome(amount); err != nil {
		l.Info().Err(err).Str("amount", amount.String()).Send()
		s.log(ctx, op, false)

		return err
	}

	if err := s.repo.UpdateAccountBalance(ctx, account); err != nil {
		account.SetBalance(prev)
		l.Error().Err(err).Int32("account_id", accountID).Send()
		s.log(ctx, op, false)

		return domain.ErrPersistence
	}

	s.log(ctx, op, true)

	return nil
}

// InternalPayment transfers the amount between two accounts atomically.
// Both legs commit or neither does; the two audit records always carry the
// same final outcome.
func (s *Service) InternalPayment(ctx context.Context, user domain.User, amount decimal.Decimal, description string, fromID, toID int32) error {
	l := zerolog.Ctx(ctx)
	outOp := domain.NewOperation(domain.OpTransferOut, user, fromID, amount, description)
	inOp := domain.NewOperation(domain.OpTransferIn, user, toID, amount, description)

	logBoth := func(succeeded bool) {
		s.log(ctx, outOp, succeeded)
		s.log(ctx, inOp, succeeded)
	}

	if fromID == toID {
		l.Info().Int32("account_id", fromID).Msg("transfer rejected: same source and destination")
		logBoth(false)

		return domain.ErrInvalidAmount
	}

	// Authorization is checked once, for the debit leg.
	if err := s.auth.CanInvokeOperation(ctx, outOp, user); err != nil {
		if errors.Is(err, domain.ErrNotAuthorized) {
			if logErr := s.history.LogUnauthorized(ctx, outOp); logErr != nil {
				l.Error().Err(logErr).Msg("failed to audit unauthorized operation")
			}

			return err
		}

		l.Error().Err(err).Send()
		logBoth(false)

		return err
	}

	from, err := s.account(ctx, fromID)
	if err != nil {
		logBoth(false)
		return err
	}

	to, err := s.account(ctx, toID)
	if err != nil {
		logBoth(false)
		return err
	}

	// Locks are always taken in ascending account ID order so concurrent
	// transfers over the same pair cannot deadlock.
	first, second := from, to
	if second.ID < first.ID {
		first, second = second, first
	}

	if err := first.Acquire(s.lockTimeout); err != nil {
		logBoth(false)
		return err
	}
	defer first.Release()

	if err := second.Acquire(s.lockTimeout); err != nil {
		logBoth(false)
		return err
	}
	defer second.Release()

	prevFrom := from.Balance()
	prevTo := to.Balance()

	if err := from.Outcome(amount); err != nil {
		l.Info().Err(err).Str("amount", amount.String()).Send()
		logBoth(false)

		return err
	}

	if err := to.Income(amount); err != nil {
		from.SetBalance(prevFrom)
		l.Info().Err(err).Str("amount", amount.String()).Send()
		logBoth(false)

		return err
	}

	// Two-phase commit against the repo with compensating rollback: if
	// either leg fails to persist, both in-memory balances are restored to
	// their exact pre-transfer values.
	if err := s.repo.UpdateAccountBalance(ctx, from); err != nil {
		from.SetBalance(prevFrom)
		to.SetBalance(prevTo)
		l.Error().Err(err).Int32("account_id", fromID).Send()
		logBoth(false)

		return domain.ErrAtomicity
	}

	if err := s.repo.UpdateAccountBalance(ctx, to); err != nil {
		from.SetBalance(prevFrom)
		to.SetBalance(prevTo)

		// The source debit is already durable and must be compensated in
		// the repo, not just in memory.
		if compErr := s.repo.UpdateAccountBalance(ctx, from); compErr != nil {
			l.Error().Err(compErr).Int32("account_id", fromID).
				Msg("compensating source balance write failed; durable state diverges")
		}

		l.Error().Err(err).Int32("account_id", toID).Send()
		logBoth(false)

		return domain.ErrAtomicity
	}

	logBoth(true)

	return nil
}

// LogIn authenticates the user and returns the access token of the new
// session. Each login gets its own session; it never displaces another
// caller's session.
func (s *Service) LogIn(ctx context.Context, username string, password []byte) (string, error) {
	op := domain.NewSessionOperation(domain.OpLogIn, domain.User{Name: username}, "log in")

	token, _, err := s.auth.LogIn(ctx, username, password)
	s.log(ctx, op, err == nil)

	if err != nil {
		return "", err
	}

	return token, nil
}

// LogOut invalidates the user's sessions and reports whether any existed.
func (s *Service) LogOut(ctx context.Context, username string) bool {
	op := domain.NewSessionOperation(domain.OpLogOut, domain.User{Name: username}, "log out")

	existed := s.auth.LogOut(ctx, username)
	s.log(ctx, op, existed)

	return existed
}
